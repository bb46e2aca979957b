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

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".letguard.yml"

// FileConfig is the on-disk configuration.
type FileConfig struct {
	// Fix enables rewriting files with automatic fixes.
	Fix bool `yaml:"fix"`

	// Color is "auto" (default), "always" or "never".
	Color string `yaml:"color"`
}

// Load reads and parses a config file. A missing file at the default
// location is not an error for callers; they should check with
// [os.IsNotExist].
func Load(path string) (FileConfig, error) {
	var cfg FileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

func (c FileConfig) validate() error {
	switch c.Color {
	case "", "auto", "always", "never":
		return nil
	}

	return fmt.Errorf("invalid color mode %q", c.Color)
}
