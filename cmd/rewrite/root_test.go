// Copyright 2025 walteh LLC
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

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInput = "import { BetCard } from './BetCard';\nconsole.log('x', data);\nconst a = 1;\n"

// execute runs the root command against an in-memory filesystem
func execute(t *testing.T, fsys afero.Fs, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd(fsys)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_RewritesInPlace(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "picks.jsx", []byte(testInput), 0o644))

	out, err := execute(t, fsys, "picks.jsx")
	require.NoError(t, err)

	data, err := afero.ReadFile(fsys, "picks.jsx")
	require.NoError(t, err)
	assert.Equal(t, "console.log('x', data);\nconst a = 1;\n", string(data))

	assert.Contains(t, out, "✓ removeImportBetCard")
	assert.Contains(t, out, "✅ wrote picks.jsx")
}

func TestRoot_OutputFlag(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "picks.jsx", []byte(testInput), 0o644))

	_, err := execute(t, fsys, "picks.jsx", "--output", "picks.clean.jsx")
	require.NoError(t, err)

	// Input untouched, result written elsewhere
	original, err := afero.ReadFile(fsys, "picks.jsx")
	require.NoError(t, err)
	assert.Equal(t, testInput, string(original))

	cleaned, err := afero.ReadFile(fsys, "picks.clean.jsx")
	require.NoError(t, err)
	assert.NotContains(t, string(cleaned), "BetCard")
}

func TestRoot_DryRun(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "picks.jsx", []byte(testInput), 0o644))

	out, err := execute(t, fsys, "picks.jsx", "--dry-run")
	require.NoError(t, err)

	data, err := afero.ReadFile(fsys, "picks.jsx")
	require.NoError(t, err)
	assert.Equal(t, testInput, string(data), "dry run must not write")
	assert.Contains(t, out, "dry run, nothing written")
}

func TestRoot_YAMLReport(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "picks.jsx", []byte(testInput), 0o644))

	out, err := execute(t, fsys, "picks.jsx", "--dry-run", "--report", "yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "changed: true")
	assert.Contains(t, out, "name: removeImportBetCard")
	assert.NotContains(t, out, "dry run", "yaml output must stay machine-readable")
}

func TestRoot_MissingInput(t *testing.T) {
	fsys := afero.NewMemMapFs()

	_, err := execute(t, fsys, "missing.jsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading missing.jsx")
}

func TestRoot_UnsupportedReportFormat(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "picks.jsx", []byte(testInput), 0o644))

	_, err := execute(t, fsys, "picks.jsx", "--report", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported report format "json"`)
}

func TestRoot_Idempotent(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "picks.jsx", []byte(testInput), 0o644))

	_, err := execute(t, fsys, "picks.jsx")
	require.NoError(t, err)
	first, err := afero.ReadFile(fsys, "picks.jsx")
	require.NoError(t, err)

	_, err = execute(t, fsys, "picks.jsx")
	require.NoError(t, err)
	second, err := afero.ReadFile(fsys, "picks.jsx")
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}
