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

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/letguard/letguard/internal/config"
	"github.com/letguard/letguard/internal/report"
	"github.com/letguard/letguard/linter"
)

// Exit codes.
const (
	exitClean      = 0
	exitViolations = 1
	exitError      = 2
)

var errViolations = errors.New("violations found")

var (
	flagFix    bool
	flagColor  string
	flagConfig string
)

var rootCmd = &cobra.Command{
	Use:   "letguard [paths...]",
	Short: "Detect and fix redundant let bodies in Elm source files",
	Long: `letguard reports let expressions whose body is no more than a reference
to a value bound in that same let, and can rewrite them so the value is
inlined and the let removed.

Directories are walked recursively for .elm files. With no arguments the
current directory is linted.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.Flags().BoolVar(&flagFix, "fix", false, "rewrite files with automatic fixes")
	rootCmd.Flags().StringVar(&flagColor, "color", "", "colored output: auto, always or never")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to the configuration file (default .letguard.yml)")
}

func run() int {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errViolations) {
			return exitViolations
		}

		fmt.Fprintf(os.Stderr, "letguard: %v\n", err)

		return exitError
	}

	return exitClean
}

func runRoot(cmd *cobra.Command, args []string) error {
	l, err := buildLinter(cmd)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectFiles(paths)
	if err != nil {
		return err
	}

	printer := report.NewPrinter(os.Stdout, l.ColorEnabled(report.IsTerminal(os.Stdout)))

	violations, fixed := 0, 0
	for _, path := range files {
		v, f, err := lintOne(l, printer, path)
		if err != nil {
			return err
		}

		violations += v
		fixed += f
	}

	printer.Summary(violations, fixed)

	if violations > 0 {
		return errViolations
	}

	return nil
}

// buildLinter resolves flags and the optional config file into a linter.
// Flags win over file settings.
func buildLinter(cmd *cobra.Command) (*linter.Linter, error) {
	cfgPath := flagConfig
	if cfgPath == "" {
		cfgPath = config.DefaultFileName
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		// The default config file is optional, an explicit one is not.
		if flagConfig != "" || !os.IsNotExist(err) {
			return nil, err
		}
	}

	fix := cfg.Fix
	if cmd.Flags().Changed("fix") {
		fix = flagFix
	}

	color := cfg.Color
	if flagColor != "" {
		color = flagColor
	}
	if color == "" {
		color = string(linter.ColorAuto)
	}

	switch linter.ColorMode(color) {
	case linter.ColorAuto, linter.ColorAlways, linter.ColorNever:
	default:
		return nil, fmt.Errorf("invalid color mode %q", color)
	}

	return linter.New(
		linter.WithFix(fix),
		linter.WithColor(linter.ColorMode(color)),
	), nil
}

func collectFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, path)

			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				// elm-stuff holds build artifacts, never sources to lint.
				if d.Name() == "elm-stuff" || d.Name() == "node_modules" {
					return filepath.SkipDir
				}

				return nil
			}

			if strings.HasSuffix(p, ".elm") {
				files = append(files, p)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// lintOne lints a single file, applying fixes when enabled. Returns the
// number of remaining violations and of applied fixes.
func lintOne(l *linter.Linter, printer *report.Printer, path string) (violations, fixed int, err error) {
	if l.ShouldFix() {
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return 0, 0, readErr
		}

		patched, applied, fixErr := l.FixSource(path, string(content))
		if fixErr != nil {
			return 0, 0, fixErr
		}

		if applied > 0 {
			if writeErr := os.WriteFile(path, []byte(patched), 0o644); writeErr != nil {
				return 0, 0, writeErr
			}
		}

		fixed = applied
	}

	result, err := l.LintFile(path)
	if err != nil {
		return 0, fixed, err
	}

	for _, d := range result.Diagnostics {
		printer.Print(path, d)
	}

	return len(result.Diagnostics), fixed, nil
}
