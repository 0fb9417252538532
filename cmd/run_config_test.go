package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRunConfig_UnknownField_Rejected(t *testing.T) {
	// GIVEN a config with a typo
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("polcy: first-fit\n"), 0o644))

	// THEN parsing fails
	_, err := loadRunConfig(path)
	assert.ErrorContains(t, err, "parsing run config")
}

func TestLoadRunConfig_EmptyFile_ZeroConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg, err := loadRunConfig(path)
	require.NoError(t, err)
	assert.Equal(t, &RunConfig{}, cfg)
}

func TestLoadRunConfig_MissingFile(t *testing.T) {
	_, err := loadRunConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading run config")
}
