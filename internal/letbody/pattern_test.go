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

// typePrelude provides one cataloged and one generic constructor for the
// extraction tests.
const typePrelude = `type Wrapper
    = Wrapper Int


type Box a
    = Box a


`

// parseBody parses typePrelude plus one value declaration and returns the
// declaration's body together with the module's constructor catalog.
func parseBody(t *testing.T, body string) (ast.Expression, Catalog) {
	t.Helper()

	m, err := parser.ParseModule("Test.elm", typePrelude+"value =\n    "+body+"\n")
	require.NoError(t, err)

	catalog := BuildCatalog(m.Declarations)
	decl := m.Declarations[len(m.Declarations)-1].(*ast.ValueDeclaration)

	return decl.Body, catalog
}

func TestCheckPatternToFind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want patternToFind
	}{
		{
			name: "reference",
			body: "b",
			want: referencePattern{name: "b"},
		},
		{
			name: "parenthesized_reference",
			body: "(b)",
			want: referencePattern{name: "b"},
		},
		{
			name: "qualified_reference",
			body: "String.fromInt",
			want: nil,
		},
		{
			name: "tuple_of_references",
			body: "( a, b )",
			want: tuplePattern{elements: []patternToFind{
				referencePattern{name: "a"},
				referencePattern{name: "b"},
			}},
		},
		{
			name: "tuple_with_literal",
			body: "( a, 2 )",
			want: nil,
		},
		{
			name: "cataloged_constructor",
			body: "Wrapper x",
			want: namedPattern{name: "Wrapper", args: []patternToFind{
				referencePattern{name: "x"},
			}},
		},
		{
			name: "constructor_with_tuple_argument",
			body: "Wrapper ( a, b )",
			want: namedPattern{name: "Wrapper", args: []patternToFind{
				tuplePattern{elements: []patternToFind{
					referencePattern{name: "a"},
					referencePattern{name: "b"},
				}},
			}},
		},
		{
			name: "generic_constructor",
			body: "Box x",
			want: nil,
		},
		{
			name: "qualified_constructor",
			body: "Maybe.Just x",
			want: nil,
		},
		{
			name: "constructor_with_irreducible_argument",
			body: "Wrapper 1",
			want: nil,
		},
		{
			name: "plain_function_call",
			body: "f x",
			want: nil,
		},
		{
			name: "literal",
			body: "1",
			want: nil,
		},
		{
			name: "operator_expression",
			body: "a + b",
			want: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body, catalog := parseBody(t, tt.body)
			assert.Equal(t, tt.want, checkPatternToFind(body, catalog))
		})
	}
}
