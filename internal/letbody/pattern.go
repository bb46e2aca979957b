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

// patternToFind is the abstract shape of a let body that might be redundant
// with one of the let's own bindings: a bare reference, a tuple of reducible
// elements, or an application of a cataloged single-variant constructor.
type patternToFind interface {
	isPatternToFind()
}

type referencePattern struct {
	name string
}

type tuplePattern struct {
	elements []patternToFind
}

type namedPattern struct {
	name string
	args []patternToFind
}

func (referencePattern) isPatternToFind() {}
func (tuplePattern) isPatternToFind()     {}
func (namedPattern) isPatternToFind()     {}

// checkPatternToFind reduces a let body expression to a patternToFind, or
// nil when the body is anything else. The reduction is all-or-nothing: a
// tuple or constructor application whose elements are not all reducible
// yields nil, because a partially bound body is not confidently redundant.
// Qualified references never reduce; imported names are not resolved.
func checkPatternToFind(expr ast.Expression, catalog Catalog) patternToFind {
	switch e := expr.(type) {
	case *ast.Paren:
		return checkPatternToFind(e.Inner, catalog)

	case *ast.Var:
		if e.Qualified() {
			return nil
		}

		return referencePattern{name: e.Name}

	case *ast.Tuple:
		elements := make([]patternToFind, 0, len(e.Elements))
		for _, el := range e.Elements {
			sub := checkPatternToFind(el, catalog)
			if sub == nil {
				return nil
			}
			elements = append(elements, sub)
		}

		return tuplePattern{elements: elements}

	case *ast.App:
		head, ok := e.Func.(*ast.Var)
		if !ok || head.Qualified() || !catalog.Has(head.Name) {
			return nil
		}

		args := make([]patternToFind, 0, len(e.Args))
		for _, arg := range e.Args {
			sub := checkPatternToFind(arg, catalog)
			if sub == nil {
				return nil
			}
			args = append(args, sub)
		}

		return namedPattern{name: head.Name, args: args}
	}

	return nil
}
