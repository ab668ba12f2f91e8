//go:build integration

package fs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveAndRemoveAll(t *testing.T) {
	fs := NewFS()
	hooks := t.TempDir()
	payloadDir := filepath.Join(hooks, "git-collab")
	legacy := filepath.Join(hooks, "post-commit.git-collab")

	require.NoError(t, fs.MkdirAll(payloadDir, 0755))
	require.NoError(t, fs.WriteFile(filepath.Join(payloadDir, "post-commit"), []byte("payload"), 0755))
	require.NoError(t, fs.WriteFile(legacy, []byte("legacy"), 0755))

	require.NoError(t, fs.RemoveAll(payloadDir))
	assert.NoDirExists(t, payloadDir)

	require.NoError(t, fs.Remove(legacy))
	assert.NoFileExists(t, legacy)

	// Removing a missing path only fails for Remove
	assert.NoError(t, fs.RemoveAll(payloadDir))
	assert.Error(t, fs.Remove(legacy))
}
