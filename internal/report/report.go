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

// Package report renders diagnostics for terminal consumption.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/letguard/letguard/internal/rule"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiRed   = "\x1b[31m"
	ansiCyan  = "\x1b[36m"
	ansiFaint = "\x1b[2m"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Printer writes diagnostics line-oriented to w:
//
//	path:row:col: message [rule]
//
// followed by indented detail lines.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter creates a printer. Color is the caller's decision; see
// [IsTerminal].
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// Print renders one diagnostic.
func (p *Printer) Print(path string, d rule.Diagnostic) {
	loc := fmt.Sprintf("%s:%d:%d", path, d.Range.Start.Row, d.Range.Start.Column)

	if p.color {
		fmt.Fprintf(p.w, "%s%s:%s %s%s%s [%s%s%s]\n",
			ansiBold, loc, ansiReset,
			ansiRed, d.Message, ansiReset,
			ansiCyan, d.Rule, ansiReset)
	} else {
		fmt.Fprintf(p.w, "%s: %s [%s]\n", loc, d.Message, d.Rule)
	}

	for _, detail := range d.Details {
		if p.color {
			fmt.Fprintf(p.w, "    %s%s%s\n", ansiFaint, detail, ansiReset)
		} else {
			fmt.Fprintf(p.w, "    %s\n", detail)
		}
	}
}

// Summary renders the closing count line.
func (p *Printer) Summary(violations, fixed int) {
	switch {
	case violations == 0 && fixed == 0:
		fmt.Fprintln(p.w, "No violations found.")

	case fixed > 0:
		fmt.Fprintf(p.w, "%d violation(s) found, %d fixed.\n", violations+fixed, fixed)

	default:
		fmt.Fprintf(p.w, "%d violation(s) found.\n", violations)
	}
}
