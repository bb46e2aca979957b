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
	"log/slog"

	"github.com/letguard/letguard/internal/config"
)

// ColorMode controls colored diagnostic output.
type ColorMode string

// Color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Option configures specific behavior of a [New] linter.
type Option interface {
	apply(l *Linter)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option]
// interface.
type Options []Option

func (o Options) apply(l *Linter) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(l)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	as := make([]slog.Attr, 0, len(o))
	for _, opt := range o {
		if opt == nil {
			as = append(as, slog.String("nil", "<nil>"))

			continue
		}

		as = append(as, opt.LogAttr())
	}

	return slog.Any("options", slog.GroupValue(as...))
}

// WithFix is an [Option] to rewrite files with automatic fixes.
func WithFix(fix bool) Option { return fixOption{fix: fix} }

type fixOption struct{ fix bool }

func (o fixOption) apply(l *Linter) {
	l.behavior.Set(config.ApplyFixes, o.fix)
}

func (o fixOption) LogAttr() slog.Attr {
	return slog.Bool("fix", o.fix)
}

// WithColor is an [Option] to configure colored diagnostic output.
func WithColor(mode ColorMode) Option { return colorOption{mode: mode} }

type colorOption struct{ mode ColorMode }

func (o colorOption) apply(l *Linter) {
	l.behavior.Set(config.ForceColor, o.mode == ColorAlways)
	l.behavior.Set(config.NoColor, o.mode == ColorNever)
}

func (o colorOption) LogAttr() slog.Attr {
	return slog.String("color", string(o.mode))
}
