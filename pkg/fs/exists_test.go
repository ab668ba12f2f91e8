//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "post-commit")
	require.NoError(t, os.WriteFile(file, []byte("#!/bin/sh\n"), 0644))

	tests := []struct {
		name   string
		path   string
		exists bool
	}{
		{name: "file", path: file, exists: true},
		{name: "directory", path: tempDir, exists: true},
		{name: "missing", path: filepath.Join(tempDir, "missing"), exists: false},
		{name: "missing parent", path: filepath.Join(tempDir, "missing", "post-commit"), exists: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := fs.Exists(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.exists, exists)
		})
	}
}
