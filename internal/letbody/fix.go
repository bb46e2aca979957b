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
	"strings"

	"github.com/letguard/letguard/internal/ast"
	"github.com/letguard/letguard/internal/source"
)

// fix turns a resolution into text edits against the original source.
// extract must return the verbatim text behind a range.
//
// The arithmetic is 1-based: "start of line" edits use column 1, and the
// indentation rebuilt for MoveLast is letRange.Start.Column-1 spaces, so the
// relocated "in" lines up under the "let" keyword.
func fix(extract func(ast.Range) string, letRange, letBodyRange ast.Range, resolution Resolution) []source.Edit {
	switch r := resolution.(type) {
	case ReportNoFix:
		return nil

	case RemoveOnly:
		// Only the copied value's text survives where the let used to be.
		return []source.Edit{
			{Range: ast.Range{Start: letRange.Start, End: r.ToCopy.Start}},
			{Range: ast.Range{Start: r.ToCopy.End, End: letRange.End}},
		}

	case Move:
		return []source.Edit{
			{Range: r.ToRemove},
			{Range: letBodyRange, NewText: extract(r.ToCopy)},
		}

	case MoveLast:
		indentation := strings.Repeat(" ", letRange.Start.Column-1)

		return []source.Edit{
			{
				Range:   ast.Range{Start: r.PreviousEnd, End: r.ToCopy.Start},
				NewText: "\n" + indentation + "in\n" + indentation,
			},
			{Range: ast.Range{Start: r.ToCopy.End, End: letRange.End}},
		}
	}

	return nil
}
