//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_SetsPermissionsOnExistingFile(t *testing.T) {
	fs := NewFS()
	file := filepath.Join(t.TempDir(), "post-commit")
	require.NoError(t, os.WriteFile(file, []byte("old"), 0644))

	require.NoError(t, fs.WriteFile(file, []byte("new"), 0755))

	content, err := fs.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	fs := NewFS()
	file := filepath.Join(t.TempDir(), "missing", "post-commit")

	err := fs.WriteFile(file, []byte("content"), 0644)
	assert.Error(t, err)
}
