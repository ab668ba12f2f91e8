package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// SetupTestRepo creates a temporary git repository for testing and returns its path.
// The global git configuration is redirected into the temporary directory.
func SetupTestRepo(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	IsolateGlobalConfig(t, tmpDir)

	repoPath := filepath.Join(tmpDir, "repo")
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("Failed to create repository directory: %v", err)
	}

	RunGit(t, repoPath, "init")
	RunGit(t, repoPath, "config", "user.name", "Test User")
	RunGit(t, repoPath, "config", "user.email", "test@example.com")

	return repoPath
}

// IsolateGlobalConfig points git's global configuration at a file below dir.
func IsolateGlobalConfig(t *testing.T, dir string) string {
	t.Helper()

	globalConfig := filepath.Join(dir, "gitconfig")
	if err := os.WriteFile(globalConfig, nil, 0644); err != nil {
		t.Fatalf("Failed to create global git config: %v", err)
	}
	t.Setenv("GIT_CONFIG_GLOBAL", globalConfig)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	return globalConfig
}

// RunGit runs a git command in dir and fails the test on error.
func RunGit(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v (output: %s)", args, err, string(output))
	}

	return string(output)
}
