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

package linter

import (
	"errors"
	"fmt"
	"os"

	"github.com/letguard/letguard/internal/config"
	"github.com/letguard/letguard/internal/letbody"
	"github.com/letguard/letguard/internal/parser"
	"github.com/letguard/letguard/internal/rule"
	"github.com/letguard/letguard/internal/source"
)

// ErrFixLoop is returned when applying fixes does not converge. It indicates
// a rule whose fix re-introduces its own violation.
var ErrFixLoop = errors.New("fixes did not converge")

// maxFixRounds bounds the fix loop; each round removes at least one let, so
// real inputs converge far earlier.
const maxFixRounds = 1000

// Linter runs the configured rules over source files.
type Linter struct {
	behavior config.Behavior
	rules    []rule.Rule
}

// New creates a linter with the default rule set, configured by opts.
func New(opts ...Option) *Linter {
	l := &Linter{
		rules: []rule.Rule{letbody.New()},
	}
	Options(opts).apply(l)

	return l
}

// ShouldFix reports whether automatic fixes are enabled.
func (l *Linter) ShouldFix() bool {
	return l.behavior.Enabled(config.ApplyFixes)
}

// ColorEnabled resolves whether output should be colored, given whether
// stdout is a terminal.
func (l *Linter) ColorEnabled(isTerminal bool) bool {
	if l.behavior.Enabled(config.NoColor) {
		return false
	}

	return l.behavior.Enabled(config.ForceColor) || isTerminal
}

// FileResult is the outcome of linting one file.
type FileResult struct {
	File        *source.File
	Diagnostics []rule.Diagnostic
}

// LintSource lints in-memory content. The path is only used in messages.
func (l *Linter) LintSource(path, content string) (*FileResult, error) {
	m, err := parser.ParseModule(path, content)
	if err != nil {
		return nil, err
	}

	f := source.NewFile(path, content)

	return &FileResult{
		File:        f,
		Diagnostics: rule.RunModule(f, m, l.rules),
	}, nil
}

// LintFile lints a file on disk.
func (l *Linter) LintFile(path string) (*FileResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return l.LintSource(path, string(content))
}

// FixSource repeatedly applies the first fixable diagnostic and re-lints
// until the content is clean of fixable violations. One diagnostic is
// applied per round so edits from different diagnostics can never overlap.
// Returns the fixed content and the number of fixes applied.
func (l *Linter) FixSource(path, content string) (string, int, error) {
	applied := 0

	for round := 0; round < maxFixRounds; round++ {
		result, err := l.LintSource(path, content)
		if err != nil {
			return content, applied, err
		}

		fixed := false
		for _, d := range result.Diagnostics {
			if !d.Fixable() {
				continue
			}

			content = result.File.Apply(d.Edits)
			applied++
			fixed = true

			break
		}

		if !fixed {
			return content, applied, nil
		}
	}

	return content, applied, fmt.Errorf("%s: %w", path, ErrFixLoop)
}
