package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "tiger.eps")
	require.NoError(t, os.WriteFile(filename, []byte("%!PS"), 0644))

	assert.True(t, FileExists(filename), "FileExists should return true for an existing file")
	assert.True(t, FileExists(dir), "FileExists should return true for an existing directory")
	assert.False(t, FileExists(filepath.Join(dir, "missing.ps")), "FileExists should return false for a missing file")
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden(".git"))
	assert.True(t, IsHidden(".hidden.ps"))
	assert.False(t, IsHidden("tiger.ps"))
	assert.False(t, IsHidden("."))
	assert.False(t, IsHidden(".."))
	assert.False(t, IsHidden(""))
}
