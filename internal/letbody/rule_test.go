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

	"github.com/letguard/letguard/internal/parser"
	"github.com/letguard/letguard/internal/rule"
	"github.com/letguard/letguard/internal/source"
)

func lint(t *testing.T, src string) ([]rule.Diagnostic, *source.File) {
	t.Helper()

	m, err := parser.ParseModule("Test.elm", src)
	require.NoError(t, err)

	f := source.NewFile("Test.elm", src)

	return rule.RunModule(f, m, []rule.Rule{New()}), f
}

func TestRuleFixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		fixed string
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
			fixed: `value =
    1
`,
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
			fixed: `value =
    let
        b =
            1
    in
    b + 1
`,
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
			fixed: `value =
    let

        c =
            2
    in
    1
`,
		},
		{
			name: "blank_line_between_bindings",
			src: `value =
    let
        b =
            1

        c =
            b + 1
    in
    c
`,
			fixed: `value =
    let
        b =
            1
    in
    b + 1
`,
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
			fixed: `both p =
    p
`,
		},
		{
			name: "constructor_destructuring",
			src: `type Wrapper
    = Wrapper Int


unwrap v =
    let
        (Wrapper x) =
            v
    in
    Wrapper x
`,
			fixed: `type Wrapper
    = Wrapper Int


unwrap v =
    v
`,
		},
		{
			name: "nested_let",
			src: `total =
    let
        result =
            let
                x =
                    1
            in
            x
    in
    result + 1
`,
			fixed: `total =
    let
        result =
            1
    in
    result + 1
`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags, f := lint(t, tt.src)
			require.Len(t, diags, 1)

			d := diags[0]
			assert.Equal(t, Name, d.Rule)
			assert.Equal(t, message, d.Message)
			require.True(t, d.Fixable())

			assert.Equal(t, tt.fixed, f.Apply(d.Edits))
		})
	}
}

func TestRuleReportsWithoutFix(t *testing.T) {
	t.Parallel()

	diags, _ := lint(t, `apply =
    let
        f x =
            x + 1
    in
    f
`)

	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, Name, d.Rule)
	assert.Equal(t, message, d.Message)
	assert.False(t, d.Fixable())
	assert.Equal(t, noFixDetails, d.Details)
}

func TestRuleReportRange(t *testing.T) {
	t.Parallel()

	diags, _ := lint(t, `value =
    let
        b =
            1
    in
    b
`)

	require.Len(t, diags, 1)
	assert.Equal(t, rng(6, 5, 6, 6), diags[0].Range)
	assert.Equal(t, details, diags[0].Details)
}

func TestRuleSilentCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{
			name: "body_is_computation",
			src: `value =
    let
        b =
            1
    in
    b + 1
`,
		},
		{
			name: "tuple_element_reference",
			src: `first p =
    let
        ( a, _ ) =
            p
    in
    a
`,
		},
		{
			name: "partially_bound_tuple",
			src: `pair p =
    let
        ( a, b ) =
            p
    in
    ( a, 2 )
`,
		},
		{
			name: "generic_constructor",
			src: `type Box a
    = Box a


boxed v =
    let
        (Box x) =
            v
    in
    Box x
`,
		},
		{
			name: "multi_variant_constructor",
			src: `type Shape
    = Circle Float
    | Square Float


shaped v =
    let
        (Circle r) =
            v
    in
    Circle r
`,
		},
		{
			name: "qualified_body_reference",
			src: `value =
    let
        b =
            1
    in
    Basics.identity
`,
		},
		{
			name: "unbound_reference",
			src: `value =
    let
        b =
            1
    in
    c
`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags, _ := lint(t, tt.src)
			assert.Empty(t, diags)
		})
	}
}

// Applying a fix never introduces a new violation for these shapes; the
// fixed text lints clean.
func TestRuleFixConverges(t *testing.T) {
	t.Parallel()

	src := `value =
    let
        b =
            1
        c =
            b + 1
    in
    c
`

	diags, f := lint(t, src)
	require.Len(t, diags, 1)

	fixed := f.Apply(diags[0].Edits)

	again, _ := lint(t, fixed)
	assert.Empty(t, again)
}
