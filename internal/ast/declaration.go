// Copyright 2026 The letguard Authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package ast

// Declaration is a top-level declaration of a module.
type Declaration interface {
	Node
	declarationNode()
}

// ValueDeclaration is a top-level value or function declaration.
type ValueDeclaration struct {
	Range  Range
	Name   string
	Params []Pattern
	Body   Expression
}

func (d *ValueDeclaration) GetRange() Range { return d.Range }
func (*ValueDeclaration) declarationNode()  {}

// Constructor is one variant of a custom type declaration. Arity counts the
// constructor's argument types.
type Constructor struct {
	Range Range
	Name  string
	Arity int
}

// TypeDeclaration is a custom type declaration:
// "type Name params = Ctor ... | Ctor ...".
type TypeDeclaration struct {
	Range        Range
	Name         string
	Params       []string
	Constructors []Constructor
}

func (d *TypeDeclaration) GetRange() Range { return d.Range }
func (*TypeDeclaration) declarationNode()  {}

// TypeAliasDeclaration records a type alias by name. The aliased type is not
// retained; aliases never contribute constructors.
type TypeAliasDeclaration struct {
	Range Range
	Name  string
}

func (d *TypeAliasDeclaration) GetRange() Range { return d.Range }
func (*TypeAliasDeclaration) declarationNode()  {}

// Import records an import line. Only the module path is retained; imported
// names are not resolved.
type Import struct {
	Range      Range
	ModuleName []string
}

// Module is the root node produced by parsing one source file.
type Module struct {
	Name         []string
	Imports      []Import
	Declarations []Declaration
}
