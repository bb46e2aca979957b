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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letguard/letguard/internal/config"
)

func TestBehavior(t *testing.T) {
	t.Parallel()

	var b config.Behavior

	assert.False(t, b.Enabled(config.ApplyFixes))

	b.Set(config.ApplyFixes, true)
	b.Set(config.ForceColor, true)
	assert.True(t, b.Enabled(config.ApplyFixes))
	assert.True(t, b.Enabled(config.ForceColor))
	assert.False(t, b.Enabled(config.NoColor))

	b.Set(config.ApplyFixes, false)
	assert.False(t, b.Enabled(config.ApplyFixes))
	assert.True(t, b.Enabled(config.ForceColor))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    config.FileConfig
		wantErr bool
	}{
		{
			name:    "full",
			content: "fix: true\ncolor: never\n",
			want:    config.FileConfig{Fix: true, Color: "never"},
		},
		{
			name:    "empty",
			content: "",
			want:    config.FileConfig{},
		},
		{
			name:    "invalid_color",
			content: "color: sometimes\n",
			wantErr: true,
		},
		{
			name:    "malformed_yaml",
			content: "fix: [\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), config.DefaultFileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			cfg, err := config.Load(path)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), config.DefaultFileName))
	assert.True(t, os.IsNotExist(err))
}
