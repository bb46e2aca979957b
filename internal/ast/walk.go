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

// Walk visits expr and every expression nested inside it, in pre-order.
func Walk(expr Expression, visit func(Expression)) {
	if expr == nil {
		return
	}

	visit(expr)

	switch e := expr.(type) {
	case *App:
		Walk(e.Func, visit)
		for _, arg := range e.Args {
			Walk(arg, visit)
		}

	case *BinOp:
		Walk(e.Left, visit)
		Walk(e.Right, visit)

	case *Negate:
		Walk(e.Expr, visit)

	case *If:
		Walk(e.Cond, visit)
		Walk(e.Then, visit)
		Walk(e.Else, visit)

	case *Lambda:
		Walk(e.Body, visit)

	case *ListLit:
		for _, el := range e.Elements {
			Walk(el, visit)
		}

	case *Paren:
		Walk(e.Inner, visit)

	case *Tuple:
		for _, el := range e.Elements {
			Walk(el, visit)
		}

	case *Let:
		for _, b := range e.Bindings {
			Walk(b.Value(), visit)
		}
		Walk(e.Body, visit)
	}
}

// WalkModule visits every expression of every value declaration in m,
// declaration by declaration in source order.
func WalkModule(m *Module, visit func(Expression)) {
	for _, decl := range m.Declarations {
		if v, ok := decl.(*ValueDeclaration); ok {
			Walk(v.Body, visit)
		}
	}
}
