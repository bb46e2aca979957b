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

// Package rule defines the lint rule surface and the per-module runner.
//
// A rule observes a module through two callbacks: a declarations visitor,
// invoked once with the full ordered list of top-level declarations, and an
// expression visitor, invoked pre-order for every expression node. The
// declarations visitor always completes before the first expression visit,
// so per-module context (such as a constructor catalog) is ready when
// expressions arrive.
package rule

import (
	"github.com/letguard/letguard/internal/ast"
	"github.com/letguard/letguard/internal/source"
)

// Visitor is one rule's per-module pass. Either callback may be nil.
type Visitor struct {
	Declarations func(decls []ast.Declaration, ctx *RunContext)
	Expression   func(expr ast.Expression, ctx *RunContext)
}

// Rule is a named lint rule. NewVisitor is called once per module and
// returns fresh callbacks so per-module state never leaks between files.
type Rule struct {
	Name       string
	NewVisitor func() Visitor
}

// Diagnostic is one reported violation, optionally carrying an automatic
// fix as an ordered list of text edits.
type Diagnostic struct {
	Rule    string
	Range   ast.Range
	Message string
	Details []string
	Edits   []source.Edit
}

// Fixable reports whether the diagnostic carries an automatic fix.
func (d Diagnostic) Fixable() bool {
	return len(d.Edits) > 0
}

// RunContext gives visitors access to the source text and collects
// diagnostics. It never mutates the tree or the file.
type RunContext struct {
	file        *source.File
	diagnostics []Diagnostic
}

// NewRunContext creates the context for one module run.
func NewRunContext(f *source.File) *RunContext {
	return &RunContext{file: f}
}

// ExtractSource returns the verbatim source text spanning r.
func (c *RunContext) ExtractSource(r ast.Range) string {
	return c.file.Extract(r)
}

// Report records a diagnostic.
func (c *RunContext) Report(d Diagnostic) {
	c.diagnostics = append(c.diagnostics, d)
}

// Diagnostics returns everything reported so far, in report order.
func (c *RunContext) Diagnostics() []Diagnostic {
	return c.diagnostics
}

// RunModule runs every rule over one parsed module and returns the
// collected diagnostics.
func RunModule(f *source.File, m *ast.Module, rules []Rule) []Diagnostic {
	ctx := NewRunContext(f)

	for _, r := range rules {
		v := r.NewVisitor()

		if v.Declarations != nil {
			v.Declarations(m.Declarations, ctx)
		}

		if v.Expression != nil {
			ast.WalkModule(m, func(expr ast.Expression) {
				v.Expression(expr, ctx)
			})
		}
	}

	return ctx.Diagnostics()
}
