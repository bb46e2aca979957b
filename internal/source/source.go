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

// Package source provides access to a lint target's text: extracting the
// text behind a node range and applying fix edits.
package source

import (
	"unicode/utf8"

	"github.com/letguard/letguard/internal/ast"
)

// File is one source file held in memory. Extraction must stay stable for a
// fixed content, so File is immutable after construction.
type File struct {
	path       string
	content    string
	lineStarts []int // byte offset of each line start
}

// NewFile wraps content for range-based access.
func NewFile(path, content string) *File {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	return &File{path: path, content: content, lineStarts: starts}
}

// Path returns the file's path as given to NewFile.
func (f *File) Path() string { return f.path }

// Content returns the full file text.
func (f *File) Content() string { return f.content }

// Offset converts a 1-based row/column location to a byte offset. Columns
// count runes, matching the lexer. Locations past the end of a line or of
// the file clamp to the line or file end.
func (f *File) Offset(loc ast.Location) int {
	if loc.Row < 1 {
		return 0
	}
	if loc.Row > len(f.lineStarts) {
		return len(f.content)
	}

	offset := f.lineStarts[loc.Row-1]
	lineEnd := len(f.content)
	if loc.Row < len(f.lineStarts) {
		lineEnd = f.lineStarts[loc.Row] - 1 // before the newline
	}

	line := f.content[offset:lineEnd]
	for col := 1; col < loc.Column && len(line) > 0; col++ {
		_, w := utf8.DecodeRuneInString(line)
		line = line[w:]
		offset += w
	}

	return offset
}

// Extract returns the verbatim text spanning r.
func (f *File) Extract(r ast.Range) string {
	return f.content[f.Offset(r.Start):f.Offset(r.End)]
}

// Edit replaces the text behind Range with NewText. An empty NewText
// deletes the range.
type Edit struct {
	Range   ast.Range
	NewText string
}

// Apply applies edits to the file's content and returns the patched text.
// Edits are applied back to front so earlier edits keep later offsets valid;
// ranges must not overlap (the rules never emit overlapping edits within one
// diagnostic).
func (f *File) Apply(edits []Edit) string {
	type span struct {
		start, end int
		text       string
	}

	spans := make([]span, 0, len(edits))
	for _, e := range edits {
		spans = append(spans, span{
			start: f.Offset(e.Range.Start),
			end:   f.Offset(e.Range.End),
			text:  e.NewText,
		})
	}

	// Insertion sort, descending by start offset.
	for i := 1; i < len(spans); i++ {
		for j := i; j > 0 && spans[j-1].start < spans[j].start; j-- {
			spans[j-1], spans[j] = spans[j], spans[j-1]
		}
	}

	content := f.content
	for _, s := range spans {
		content = content[:s.start] + s.text + content[s.end:]
	}

	return content
}
