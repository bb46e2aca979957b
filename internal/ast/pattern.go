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

// Pattern is a Node in pattern position: function parameters, lambda
// parameters and the left-hand side of destructuring bindings.
type Pattern interface {
	Node
	patternNode()
}

// VarPattern binds a value to a name.
type VarPattern struct {
	Range Range
	Name  string
}

func (p *VarPattern) GetRange() Range { return p.Range }
func (*VarPattern) patternNode()      {}

// WildcardPattern is the "_" pattern, matching anything without binding.
type WildcardPattern struct {
	Range Range
}

func (p *WildcardPattern) GetRange() Range { return p.Range }
func (*WildcardPattern) patternNode()      {}

// TuplePattern destructures a tuple into element patterns.
type TuplePattern struct {
	Range    Range
	Elements []Pattern
}

func (p *TuplePattern) GetRange() Range { return p.Range }
func (*TuplePattern) patternNode()      {}

// CtorPattern matches a constructor, with one sub-pattern per argument.
type CtorPattern struct {
	Range      Range
	ModuleName []string
	Name       string
	Args       []Pattern
}

func (p *CtorPattern) GetRange() Range { return p.Range }
func (*CtorPattern) patternNode()      {}

// ParenPattern is a parenthesized pattern.
type ParenPattern struct {
	Range Range
	Inner Pattern
}

func (p *ParenPattern) GetRange() Range { return p.Range }
func (*ParenPattern) patternNode()      {}

// UnitPattern is the "()" pattern.
type UnitPattern struct {
	Range Range
}

func (p *UnitPattern) GetRange() Range { return p.Range }
func (*UnitPattern) patternNode()      {}
