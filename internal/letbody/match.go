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

import "github.com/letguard/letguard/internal/ast"

// findDeclarationToMove scans the let's bindings in declaration order for
// the first one whose left-hand shape matches the body's pattern, and
// classifies it positionally. Returns nil when no binding matches. The scan
// is a single linear pass; only the pattern derived from the body is ever
// searched for.
func findDeclarationToMove(pattern patternToFind, bindings []ast.LetBinding) Resolution {
	var previousEnd *ast.Location

	for i, binding := range bindings {
		if bindingMatches(pattern, binding) {
			return createResolution(
				bindingHasArguments(binding),
				binding.GetRange(),
				binding.Value().GetRange(),
				previousEnd,
				i == len(bindings)-1,
			)
		}

		end := binding.GetRange().End
		previousEnd = &end
	}

	return nil
}

func bindingHasArguments(binding ast.LetBinding) bool {
	if fn, ok := binding.(*ast.LetFunction); ok {
		return fn.HasArguments()
	}

	return false
}

// bindingMatches checks a body pattern against one binding's left-hand
// side. A reference matches a named binding of the same name no matter how
// many parameters it declares; whether parameters block the fix is decided
// during classification, not here.
func bindingMatches(pattern patternToFind, binding ast.LetBinding) bool {
	switch b := binding.(type) {
	case *ast.LetFunction:
		ref, ok := pattern.(referencePattern)

		return ok && ref.name == b.Name

	case *ast.LetDestructuring:
		return patternMatches(pattern, b.Pattern)
	}

	return false
}

// patternMatches structurally compares a body pattern with a destructuring
// pattern. Parentheses are transparent on the destructuring side; the body
// side was already unwrapped during extraction.
func patternMatches(pattern patternToFind, target ast.Pattern) bool {
	if paren, ok := target.(*ast.ParenPattern); ok {
		return patternMatches(pattern, paren.Inner)
	}

	switch p := pattern.(type) {
	case referencePattern:
		v, ok := target.(*ast.VarPattern)

		return ok && v.Name == p.name

	case tuplePattern:
		t, ok := target.(*ast.TuplePattern)
		if !ok || len(t.Elements) != len(p.elements) {
			return false
		}

		for i, el := range p.elements {
			if !patternMatches(el, t.Elements[i]) {
				return false
			}
		}

		return true

	case namedPattern:
		c, ok := target.(*ast.CtorPattern)
		// TODO: compare module qualifiers once imports are resolved; a
		// constructor imported under the same bare name from another module
		// is misidentified here.
		if !ok || c.Name != p.name || len(c.Args) != len(p.args) {
			return false
		}

		for i, arg := range p.args {
			if !patternMatches(arg, c.Args[i]) {
				return false
			}
		}

		return true
	}

	return false
}
