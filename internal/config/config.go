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

// Package config holds the linter's behavior flags and file configuration.
package config

// Behavior is a set of binary options for a linter run.
type Behavior uint8

const (
	// ApplyFixes rewrites files with the automatic fixes instead of only
	// reporting.
	ApplyFixes Behavior = 1 << iota

	// ForceColor enables colored output even when stdout is not a terminal.
	ForceColor

	// NoColor disables colored output unconditionally. Wins over ForceColor.
	NoColor
)

// Set adjusts the behavior by enabling or disabling the given flag.
func (b *Behavior) Set(flag Behavior, value bool) {
	if value {
		*b |= flag
	} else {
		*b &^= flag
	}
}

// Enabled checks whether the given flag is enabled.
func (b Behavior) Enabled(flag Behavior) bool {
	return b&flag != 0
}
