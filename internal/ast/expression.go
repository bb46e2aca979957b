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

// Node is the base interface of every syntax tree node. Ranges are produced
// by the parser and treated as read-only by everything downstream.
type Node interface {
	GetRange() Range
}

// Expression is a Node in expression position.
type Expression interface {
	Node
	expressionNode()
}

// Var is a reference to a value or constructor, optionally qualified with a
// module path ("Maybe.Just" has ModuleName ["Maybe"] and Name "Just").
type Var struct {
	Range      Range
	ModuleName []string
	Name       string
}

func (e *Var) GetRange() Range { return e.Range }
func (*Var) expressionNode()   {}

// Qualified reports whether the reference carries a module prefix.
func (e *Var) Qualified() bool { return len(e.ModuleName) > 0 }

// IntLit is an integer literal.
type IntLit struct {
	Range Range
	Value int64
}

func (e *IntLit) GetRange() Range { return e.Range }
func (*IntLit) expressionNode()   {}

// FloatLit is a floating-point literal.
type FloatLit struct {
	Range Range
	Value float64
}

func (e *FloatLit) GetRange() Range { return e.Range }
func (*FloatLit) expressionNode()   {}

// StringLit is a string literal. Value holds the unquoted text.
type StringLit struct {
	Range Range
	Value string
}

func (e *StringLit) GetRange() Range { return e.Range }
func (*StringLit) expressionNode()   {}

// CharLit is a character literal.
type CharLit struct {
	Range Range
	Value rune
}

func (e *CharLit) GetRange() Range { return e.Range }
func (*CharLit) expressionNode()   {}

// App is a function application: Func applied to one or more Args.
type App struct {
	Range Range
	Func  Expression
	Args  []Expression
}

func (e *App) GetRange() Range { return e.Range }
func (*App) expressionNode()   {}

// BinOp is a binary operator application.
type BinOp struct {
	Range Range
	Op    string
	Left  Expression
	Right Expression
}

func (e *BinOp) GetRange() Range { return e.Range }
func (*BinOp) expressionNode()   {}

// Negate is unary minus.
type Negate struct {
	Range Range
	Expr  Expression
}

func (e *Negate) GetRange() Range { return e.Range }
func (*Negate) expressionNode()   {}

// If is a conditional expression.
type If struct {
	Range Range
	Cond  Expression
	Then  Expression
	Else  Expression
}

func (e *If) GetRange() Range { return e.Range }
func (*If) expressionNode()   {}

// Lambda is an anonymous function.
type Lambda struct {
	Range  Range
	Params []Pattern
	Body   Expression
}

func (e *Lambda) GetRange() Range { return e.Range }
func (*Lambda) expressionNode()   {}

// ListLit is a list literal.
type ListLit struct {
	Range    Range
	Elements []Expression
}

func (e *ListLit) GetRange() Range { return e.Range }
func (*ListLit) expressionNode()   {}

// Unit is the "()" expression.
type Unit struct {
	Range Range
}

func (e *Unit) GetRange() Range { return e.Range }
func (*Unit) expressionNode()   {}

// Paren is a parenthesized expression with exactly one element.
type Paren struct {
	Range Range
	Inner Expression
}

func (e *Paren) GetRange() Range { return e.Range }
func (*Paren) expressionNode()   {}

// Tuple is a parenthesized tuple of two or more elements.
type Tuple struct {
	Range    Range
	Elements []Expression
}

func (e *Tuple) GetRange() Range { return e.Range }
func (*Tuple) expressionNode()   {}

// Let introduces one or more local bindings followed by a body expression
// evaluated in their scope. The binding order is source order and is
// significant for fix classification.
type Let struct {
	Range    Range
	Bindings []LetBinding
	Body     Expression
}

func (e *Let) GetRange() Range { return e.Range }
func (*Let) expressionNode()   {}

// LetBinding is one local declaration inside a let expression.
type LetBinding interface {
	Node
	letBindingNode()

	// Value returns the bound right-hand-side expression.
	Value() Expression
}

// LetFunction is a named binding, with zero or more parameters:
// "name = expr" or "name args = expr".
type LetFunction struct {
	Range     Range
	Name      string
	NameRange Range
	Params    []Pattern
	Body      Expression
}

func (b *LetFunction) GetRange() Range   { return b.Range }
func (*LetFunction) letBindingNode()     {}
func (b *LetFunction) Value() Expression { return b.Body }

// HasArguments reports whether the binding declares parameters.
func (b *LetFunction) HasArguments() bool { return len(b.Params) > 0 }

// LetDestructuring binds a compound pattern directly to an expression,
// extracting its parts: "(a, b) = pair".
type LetDestructuring struct {
	Range   Range
	Pattern Pattern
	Body    Expression
}

func (b *LetDestructuring) GetRange() Range   { return b.Range }
func (*LetDestructuring) letBindingNode()     {}
func (b *LetDestructuring) Value() Expression { return b.Body }
