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

package letbody

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letguard/letguard/internal/ast"
	"github.com/letguard/letguard/internal/parser"
)

func loc(row, col int) ast.Location {
	return ast.Location{Row: row, Column: col}
}

func rng(startRow, startCol, endRow, endCol int) ast.Range {
	return ast.Range{Start: loc(startRow, startCol), End: loc(endRow, endCol)}
}

// resolveFirstLet parses src, extracts the first let expression and runs the
// match on it.
func resolveFirstLet(t *testing.T, src string) Resolution {
	t.Helper()

	m, err := parser.ParseModule("Test.elm", src)
	require.NoError(t, err)

	catalog := BuildCatalog(m.Declarations)

	var letExpr *ast.Let
	ast.WalkModule(m, func(e ast.Expression) {
		if l, ok := e.(*ast.Let); ok && letExpr == nil {
			letExpr = l
		}
	})
	require.NotNil(t, letExpr)

	pattern := checkPatternToFind(letExpr.Body, catalog)
	if pattern == nil {
		return nil
	}

	return findDeclarationToMove(pattern, letExpr.Bindings)
}

func TestFindDeclarationToMove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want Resolution
	}{
		{
			name: "only_binding",
			src: `value =
    let
        b =
            1
    in
    b
`,
			want: RemoveOnly{ToCopy: rng(4, 13, 4, 14)},
		},
		{
			name: "first_of_two",
			src: `value =
    let
        b =
            1
        c =
            2
    in
    b
`,
			want: Move{
				ToRemove: rng(3, 1, 4, 14),
				ToCopy:   rng(4, 13, 4, 14),
			},
		},
		{
			name: "last_of_two",
			src: `value =
    let
        b =
            1
        c =
            b + 1
    in
    c
`,
			want: MoveLast{
				PreviousEnd: loc(4, 14),
				ToCopy:      rng(6, 13, 6, 18),
			},
		},
		{
			name: "binding_with_arguments",
			src: `apply =
    let
        f x =
            x + 1
    in
    f
`,
			want: ReportNoFix{},
		},
		{
			name: "tuple_destructuring",
			src: `both p =
    let
        ( a, b ) =
            p
    in
    ( a, b )
`,
			want: RemoveOnly{ToCopy: rng(4, 13, 4, 14)},
		},
		{
			name: "constructor_destructuring",
			src: `type W
    = W Int


unwrap v =
    let
        (W x) =
            v
    in
    W x
`,
			want: RemoveOnly{ToCopy: rng(8, 13, 8, 14)},
		},
		{
			name: "parenthesized_var_destructuring",
			src: `value p =
    let
        ( a ) =
            p
    in
    a
`,
			want: RemoveOnly{ToCopy: rng(4, 13, 4, 14)},
		},
		{
			name: "tuple_element_reference_does_not_match",
			src: `first p =
    let
        ( a, _ ) =
            p
    in
    a
`,
			want: nil,
		},
		{
			name: "unbound_reference_does_not_match",
			src: `value =
    let
        b =
            1
    in
    c
`,
			want: nil,
		},
		{
			name: "swapped_tuple_does_not_match",
			src: `both p =
    let
        ( a, b ) =
            p
    in
    ( b, a )
`,
			want: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, resolveFirstLet(t, tt.src))
		})
	}
}

func TestCreateResolution(t *testing.T) {
	t.Parallel()

	declRange := rng(5, 9, 6, 14)
	valueRange := rng(6, 13, 6, 14)
	prev := loc(4, 14)

	tests := []struct {
		name         string
		hasArguments bool
		previousEnd  *ast.Location
		isLast       bool
		want         Resolution
	}{
		{
			name:         "arguments_always_block_the_fix",
			hasArguments: true,
			previousEnd:  &prev,
			isLast:       true,
			want:         ReportNoFix{},
		},
		{
			name:   "only_binding",
			isLast: true,
			want:   RemoveOnly{ToCopy: valueRange},
		},
		{
			name:        "last_with_predecessor",
			previousEnd: &prev,
			isLast:      true,
			want:        MoveLast{PreviousEnd: prev, ToCopy: valueRange},
		},
		{
			name: "first_of_several",
			want: Move{
				ToRemove: ast.Range{Start: loc(5, 1), End: declRange.End},
				ToCopy:   valueRange,
			},
		},
		{
			name:        "middle_of_several",
			previousEnd: &prev,
			want: Move{
				ToRemove: ast.Range{Start: prev, End: declRange.End},
				ToCopy:   valueRange,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := createResolution(tt.hasArguments, declRange, valueRange, tt.previousEnd, tt.isLast)
			assert.Equal(t, tt.want, got)
		})
	}
}
