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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/letguard/letguard/internal/ast"
	"github.com/letguard/letguard/internal/source"
)

func loc(row, col int) ast.Location {
	return ast.Location{Row: row, Column: col}
}

func rng(startRow, startCol, endRow, endCol int) ast.Range {
	return ast.Range{Start: loc(startRow, startCol), End: loc(endRow, endCol)}
}

func TestOffset(t *testing.T) {
	t.Parallel()

	f := source.NewFile("Test.elm", "ab\ncdef\ng\n")

	tests := []struct {
		name string
		loc  ast.Location
		want int
	}{
		{name: "start", loc: loc(1, 1), want: 0},
		{name: "mid_line", loc: loc(2, 3), want: 5},
		{name: "line_end", loc: loc(1, 3), want: 2},
		{name: "past_line_end_clamps", loc: loc(1, 99), want: 2},
		{name: "last_line", loc: loc(3, 2), want: 9},
		{name: "past_file_end_clamps", loc: loc(99, 1), want: 10},
		{name: "row_zero_clamps", loc: loc(0, 5), want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, f.Offset(tt.loc))
		})
	}
}

func TestOffsetMultibyte(t *testing.T) {
	t.Parallel()

	// Columns count runes; "é" and "漢" are multi-byte.
	f := source.NewFile("Test.elm", "é漢x\n")

	assert.Equal(t, 0, f.Offset(loc(1, 1)))
	assert.Equal(t, 2, f.Offset(loc(1, 2)))
	assert.Equal(t, 5, f.Offset(loc(1, 3)))
	assert.Equal(t, "漢", f.Extract(rng(1, 2, 1, 3)))
}

func TestExtract(t *testing.T) {
	t.Parallel()

	f := source.NewFile("Test.elm", "value =\n    let\n        b =\n            1\n    in\n    b\n")

	assert.Equal(t, "let", f.Extract(rng(2, 5, 2, 8)))
	assert.Equal(t, "1", f.Extract(rng(4, 13, 4, 14)))
	assert.Equal(t, "b =\n            1", f.Extract(rng(3, 9, 4, 14)))
}

func TestApply(t *testing.T) {
	t.Parallel()

	f := source.NewFile("Test.elm", "one two three\n")

	tests := []struct {
		name  string
		edits []source.Edit
		want  string
	}{
		{
			name:  "delete",
			edits: []source.Edit{{Range: rng(1, 4, 1, 8)}},
			want:  "one three\n",
		},
		{
			name:  "replace",
			edits: []source.Edit{{Range: rng(1, 5, 1, 8), NewText: "2"}},
			want:  "one 2 three\n",
		},
		{
			name: "edits_given_out_of_order",
			edits: []source.Edit{
				{Range: rng(1, 1, 1, 4), NewText: "1"},
				{Range: rng(1, 9, 1, 14), NewText: "3"},
				{Range: rng(1, 5, 1, 8), NewText: "2"},
			},
			want: "1 2 3\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, f.Apply(tt.edits))
		})
	}
}

func TestApplyAcrossLines(t *testing.T) {
	t.Parallel()

	f := source.NewFile("Test.elm", "value =\n    let\n        b =\n            1\n    in\n    b\n")

	got := f.Apply([]source.Edit{
		{Range: rng(2, 5, 4, 13)},
		{Range: rng(4, 14, 6, 6)},
	})

	assert.Equal(t, "value =\n    1\n", got)
}
