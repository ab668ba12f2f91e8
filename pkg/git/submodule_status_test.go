//go:build integration

package git

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGit_SubmoduleStatus(t *testing.T) {
	git := NewGit()
	repoPath := SetupTestRepo(t)

	// Create a repository to be used as submodule
	libPath := filepath.Join(filepath.Dir(repoPath), "lib")
	require.NoError(t, os.MkdirAll(libPath, 0755))
	RunGit(t, libPath, "init")
	RunGit(t, libPath, "-c", "user.name=Test User", "-c", "user.email=test@example.com",
		"commit", "--allow-empty", "-m", "Initial commit")

	RunGit(t, repoPath, "-c", "protocol.file.allow=always", "submodule", "add", libPath, "vendor/lib")

	output, err := git.SubmoduleStatus(repoPath)
	require.NoError(t, err)

	fields := strings.Fields(strings.TrimSpace(output))
	require.GreaterOrEqual(t, len(fields), 2)
	assert.Equal(t, "vendor/lib", fields[1])
}

func TestGit_SubmoduleStatus_NoSubmodules(t *testing.T) {
	git := NewGit()
	repoPath := SetupTestRepo(t)

	output, err := git.SubmoduleStatus(repoPath)
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(output))
}

func TestGit_SubmoduleStatus_NonExistentDir(t *testing.T) {
	git := NewGit()

	_, err := git.SubmoduleStatus("/non/existent/directory")
	assert.Error(t, err)
}
