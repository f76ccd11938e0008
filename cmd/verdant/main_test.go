package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.verdant.dev/verdant/internal/adapters/dataset"
	"go.verdant.dev/verdant/internal/adapters/profile"
)

func TestRun_Version(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	tmpDir := t.TempDir()
	t.Setenv(dataset.DataDirEnv, tmpDir)
	t.Setenv(profile.StateDirEnv, tmpDir)

	os.Args = []string{"verdant", "version"}

	assert.Equal(t, 0, run())
}

func TestRun_DatasetsList(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(tmpDir+"/ec_guidelines.json", []byte(`{}`), 0o600))
	t.Setenv(dataset.DataDirEnv, tmpDir)
	t.Setenv(profile.StateDirEnv, tmpDir)

	os.Args = []string{"verdant", "datasets", "list"}

	assert.Equal(t, 0, run())
}
