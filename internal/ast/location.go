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

package ast

import "fmt"

// Location is a position in a source file. Both Row and Column are 1-based,
// matching the coordinates editors display.
type Location struct {
	Row    int
	Column int
}

// Before reports whether l is strictly before o in source order.
func (l Location) Before(o Location) bool {
	if l.Row != o.Row {
		return l.Row < o.Row
	}

	return l.Column < o.Column
}

// String renders the location as "row:column".
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Row, l.Column)
}

// Range is a half-open text span [Start, End) in row/column coordinates.
type Range struct {
	Start Location
	End   Location
}

// Empty reports whether the range spans no text.
func (r Range) Empty() bool {
	return r.Start == r.End
}

// String renders the range as "start-end".
func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
