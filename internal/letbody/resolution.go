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

// Resolution is the fix strategy selected for a matched binding. Exactly one
// variant applies per match.
type Resolution interface {
	isResolution()
}

// ReportNoFix marks a real violation that cannot be fixed automatically:
// the matched binding takes arguments, so inlining its body would change the
// meaning. The user has to refactor by hand.
type ReportNoFix struct{}

// RemoveOnly applies when the matched binding is the let's only binding:
// everything around the bound value's text is deleted, leaving the value in
// place of the whole let.
type RemoveOnly struct {
	ToCopy ast.Range
}

// Move applies when the matched binding is not the last one: the binding is
// deleted and the let body is replaced with a copy of the binding's value.
type Move struct {
	ToRemove ast.Range
	ToCopy   ast.Range
}

// MoveLast applies when the matched binding is the last of several: the
// "in" keyword moves up to sit after the second-to-last binding, and the old
// trailing body is deleted.
type MoveLast struct {
	PreviousEnd ast.Location
	ToCopy      ast.Range
}

func (ReportNoFix) isResolution() {}
func (RemoveOnly) isResolution()  {}
func (Move) isResolution()        {}
func (MoveLast) isResolution()    {}

// createResolution classifies a matched binding by its position among its
// siblings. Argument-bearing bindings always resolve to ReportNoFix;
// otherwise the variant follows from whether the binding is last and whether
// a previous binding exists.
func createResolution(hasArguments bool, declRange, valueRange ast.Range, previousEnd *ast.Location, isLast bool) Resolution {
	if hasArguments {
		return ReportNoFix{}
	}

	if isLast {
		if previousEnd == nil {
			return RemoveOnly{ToCopy: valueRange}
		}

		return MoveLast{PreviousEnd: *previousEnd, ToCopy: valueRange}
	}

	start := ast.Location{Row: declRange.Start.Row, Column: 1}
	if previousEnd != nil {
		start = *previousEnd
	}

	return Move{
		ToRemove: ast.Range{Start: start, End: declRange.End},
		ToCopy:   valueRange,
	}
}
