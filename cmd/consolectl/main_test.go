// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulseed/consolectl/internal/scanconfig"
)

func TestMaskToken(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"", ""},
		{"ab", "****"},
		{"abcd", "****"},
		{"abcdefgh", "abcd****"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, maskToken(tt.token), "token=%q", tt.token)
	}
}

func TestRawOrString(t *testing.T) {
	assert.Equal(t, json.RawMessage(`{"a":1}`), rawOrString(`{"a":1}`))
	assert.Equal(t, json.RawMessage(`"plain text"`), rawOrString("plain text"))
}

func TestRunEnvUnknownFormat(t *testing.T) {
	assert.Equal(t, 2, runEnv([]string{"--format", "xml"}))
}

func TestRunTailRejectsSessionAndCycle(t *testing.T) {
	assert.Equal(t, 2, runTail([]string{"--session", "1", "--cycle", "2"}))
}

func TestRunScanConfigUnknownSubcommand(t *testing.T) {
	assert.Equal(t, 2, runScanConfig([]string{"bogus"}))
}

func TestRunScanConfigValidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scanconfig.yaml")
	require.NoError(t, scanconfig.Save(path, scanconfig.Default()))

	assert.Equal(t, 0, runScanConfig([]string{"validate", "-f", path}))
	assert.Equal(t, 1, runScanConfig([]string{"validate", "-f", filepath.Join(dir, "missing.yaml")}))
}

func TestRunScanConfigRender(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "scanconfig.yaml")
	out := filepath.Join(dir, "tailwind.config.js")
	require.NoError(t, scanconfig.Save(src, scanconfig.Default()))

	assert.Equal(t, 0, runScanConfig([]string{"render", "-f", src, "-o", out}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "./public/index.html")
}

func TestRunScanConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scanconfig.yaml")

	assert.Equal(t, 0, runScanConfig([]string{"init", "-f", path}))
	// Refuses to clobber an existing file.
	assert.Equal(t, 1, runScanConfig([]string{"init", "-f", path}))

	cfg, err := scanconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, scanconfig.Default(), cfg)
}

func TestRunLaunchDryRunFailsWithoutBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	assert.Equal(t, 1, runLaunch([]string{"--dry-run", "--root", t.TempDir()}))
}
