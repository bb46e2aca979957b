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

// Package letbody implements the simpleletbody rule: a let expression whose
// body is no more than a reference to (or destructuring-compatible shape of)
// one of its own bindings is redundant, and where mechanically safe the rule
// fixes it by inlining the binding and removing the let.
//
// The pipeline is purely syntactic and flows one way: body expression →
// pattern extraction → structural match against the bindings → positional
// classification → text edits. The constructor catalog, built once from the
// module's type declarations, is the only per-module state.
package letbody

import (
	"github.com/letguard/letguard/internal/ast"
	"github.com/letguard/letguard/internal/rule"
)

// Name is the rule's identifier in diagnostics and configuration.
const Name = "simpleletbody"

const message = "The referenced value should be inlined"

var details = []string{
	"The body of this let expression is no more than the value bound inside it, so the name adds a level of indirection without adding meaning.",
	"Inline the bound expression and remove the let.",
}

var noFixDetails = append(details[:len(details):len(details)],
	"The matched binding takes arguments, so it cannot be inlined automatically; refactor it by hand.",
)

// New creates the rule. Each module gets a fresh visitor so the constructor
// catalog never leaks between files.
func New() rule.Rule {
	return rule.Rule{
		Name:       Name,
		NewVisitor: newVisitor,
	}
}

func newVisitor() rule.Visitor {
	var catalog Catalog

	return rule.Visitor{
		Declarations: func(decls []ast.Declaration, _ *rule.RunContext) {
			catalog = BuildCatalog(decls)
		},

		Expression: func(expr ast.Expression, ctx *rule.RunContext) {
			letExpr, ok := expr.(*ast.Let)
			if !ok {
				return
			}

			pattern := checkPatternToFind(letExpr.Body, catalog)
			if pattern == nil {
				return
			}

			resolution := findDeclarationToMove(pattern, letExpr.Bindings)
			if resolution == nil {
				return
			}

			edits := fix(ctx.ExtractSource, letExpr.Range, letExpr.Body.GetRange(), resolution)

			d := rule.Diagnostic{
				Rule:    Name,
				Range:   letExpr.Body.GetRange(),
				Message: message,
				Details: details,
				Edits:   edits,
			}
			if len(edits) == 0 {
				d.Details = noFixDetails
			}

			ctx.Report(d)
		},
	}
}
