//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "nested", "status.yaml")

	require.NoError(t, fs.WriteFileAtomic(file, []byte("users: []\n"), 0600))

	content, err := fs.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "users: []\n", string(content))

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// Overwrite keeps no temporary file behind
	require.NoError(t, fs.WriteFileAtomic(file, []byte("users:\n  - id: alice\n"), 0600))

	entries, err := fs.ReadDir(filepath.Dir(file))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "status.yaml", entries[0].Name())

	content, err = fs.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "users:\n  - id: alice\n", string(content))
}

func TestWriteFileAtomic_TargetIsDirectory(t *testing.T) {
	fs := NewFS()
	target := filepath.Join(t.TempDir(), "status.yaml")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "child"), 0755))

	err := fs.WriteFileAtomic(target, []byte("data"), 0600)
	assert.Error(t, err)

	entries, err := fs.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file should be cleaned up")
}
