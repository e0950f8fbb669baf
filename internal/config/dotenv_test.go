// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	doc := "CONSOLECTL_TEST_DOTENV_NEW=from-file\nCONSOLECTL_TEST_DOTENV_SET=from-file\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	t.Setenv("CONSOLECTL_TEST_DOTENV_SET", "from-env")
	t.Cleanup(func() { os.Unsetenv("CONSOLECTL_TEST_DOTENV_NEW") })

	require.NoError(t, loadDotenv(path))

	assert.Equal(t, "from-file", os.Getenv("CONSOLECTL_TEST_DOTENV_NEW"))
	// Variables already set in the environment win over the file.
	assert.Equal(t, "from-env", os.Getenv("CONSOLECTL_TEST_DOTENV_SET"))
}

func TestLoadDotenvMissingFile(t *testing.T) {
	assert.NoError(t, loadDotenv(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadDotenvMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("not a dotenv line\n"), 0o644))

	assert.Error(t, loadDotenv(path))
}
