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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/letguard/letguard/internal/ast"
)

func TestWalkVisitsLetPartsInOrder(t *testing.T) {
	t.Parallel()

	bound := &ast.IntLit{Value: 1}
	body := &ast.Var{Name: "b"}
	letExpr := &ast.Let{
		Bindings: []ast.LetBinding{
			&ast.LetFunction{Name: "b", Body: bound},
		},
		Body: body,
	}

	var visited []ast.Expression
	ast.Walk(letExpr, func(e ast.Expression) {
		visited = append(visited, e)
	})

	assert.Equal(t, []ast.Expression{letExpr, bound, body}, visited)
}

func TestWalkNested(t *testing.T) {
	t.Parallel()

	inner := &ast.Var{Name: "x"}
	expr := &ast.BinOp{
		Op:   "+",
		Left: &ast.Paren{Inner: inner},
		Right: &ast.Tuple{Elements: []ast.Expression{
			&ast.IntLit{Value: 1},
			&ast.Negate{Expr: &ast.IntLit{Value: 2}},
		}},
	}

	count := 0
	sawInner := false
	ast.Walk(expr, func(e ast.Expression) {
		count++
		if e == ast.Expression(inner) {
			sawInner = true
		}
	})

	assert.Equal(t, 7, count)
	assert.True(t, sawInner)
}

func TestWalkModuleSkipsTypeDeclarations(t *testing.T) {
	t.Parallel()

	m := &ast.Module{
		Declarations: []ast.Declaration{
			&ast.TypeDeclaration{Name: "Wrapper"},
			&ast.ValueDeclaration{Name: "value", Body: &ast.IntLit{Value: 1}},
		},
	}

	count := 0
	ast.WalkModule(m, func(ast.Expression) { count++ })

	assert.Equal(t, 1, count)
}
