package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv_MissingFileIgnored(t *testing.T) {
	err := loadDotEnv(filepath.Join(t.TempDir(), "nope.env"))
	assert.NoError(t, err)
}

func TestLoadDotEnv_LoadsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("THEVOICES_TEST_VAR=from-dotenv\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("THEVOICES_TEST_VAR") })

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-dotenv", os.Getenv("THEVOICES_TEST_VAR"))
}
