//go:build e2e

package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lerenn/git-collab/pkg/author"
	"github.com/lerenn/git-collab/pkg/config"
	"github.com/lerenn/git-collab/pkg/dependencies"
	"github.com/lerenn/git-collab/pkg/fs"
	"github.com/lerenn/git-collab/pkg/git"
	"github.com/lerenn/git-collab/pkg/gitcollab"
	"github.com/lerenn/git-collab/pkg/hookpath"
	"github.com/lerenn/git-collab/pkg/installer"
	"github.com/lerenn/git-collab/pkg/logger"
	"github.com/lerenn/git-collab/pkg/status"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// StatusFile represents the structure of the status.yaml file
type StatusFile = status.Status

// TestSetup holds the test environment setup
type TestSetup struct {
	TempDir    string
	Config     config.Config
	RepoPath   string
	StatusPath string
}

var (
	alice = status.User{ID: "alice", Name: "Alice", Email: "alice@example.com", Active: true}
	bob   = status.User{ID: "bob", Name: "Bob", Email: "bob@example.com", Active: true}
	carol = status.User{ID: "carol", Name: "Carol", Email: "carol@example.com"}
)

// setupTestEnvironment creates a temporary test environment with the given users
// and an isolated global git configuration.
func setupTestEnvironment(t *testing.T, users ...status.User) *TestSetup {
	t.Helper()

	tempDir := t.TempDir()
	git.IsolateGlobalConfig(t, tempDir)

	rootDir := filepath.Join(tempDir, ".git-collab")
	statusPath := filepath.Join(rootDir, "status.yaml")
	repoPath := filepath.Join(tempDir, "repo")

	require.NoError(t, os.MkdirAll(rootDir, 0755))
	require.NoError(t, os.MkdirAll(repoPath, 0755))

	if users == nil {
		users = []status.User{}
	}
	data, err := yaml.Marshal(&StatusFile{Users: users, Repositories: []status.Repository{}})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(statusPath, data, 0600))

	return &TestSetup{
		TempDir: tempDir,
		Config: config.Config{
			RootDir:    rootDir,
			StatusFile: statusPath,
		},
		RepoPath:   repoPath,
		StatusPath: statusPath,
	}
}

// newGitCollab wires a GitCollab instance on the real filesystem and git binary.
// The payload rotates users through a no-op command so that commits stay synchronous.
func newGitCollab(t *testing.T, setup *TestSetup) gitcollab.GitCollab {
	t.Helper()

	l := logger.NewNoopLogger()
	fsInstance := fs.NewFS()
	gitInstance := git.NewGit()
	resolver := hookpath.NewResolver(gitInstance, l)

	gc, err := gitcollab.NewGitCollab(gitcollab.NewGitCollabParams{
		Config: setup.Config,
		Dependencies: dependencies.New().
			WithFS(fsInstance).
			WithGit(gitInstance).
			WithLogger(l).
			WithStatusManager(status.NewManager(fsInstance, setup.Config)).
			WithInstaller(installer.NewInstaller(installer.NewInstallerParams{
				FS:          fsInstance,
				Git:         gitInstance,
				Resolver:    resolver,
				Logger:      l,
				PayloadFile: setup.Config.PayloadFile(),
			})).
			WithAuthor(author.NewAuthor(gitInstance, l)),
		Executable: "true",
		GOOS:       "linux",
	})
	require.NoError(t, err)

	return gc
}

// createTestGitRepo creates a Git repository with an initial commit
func createTestGitRepo(t *testing.T, repoPath string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(repoPath, 0755))

	gitEnv := append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)

	runGitWithEnv(t, repoPath, gitEnv, "init")

	readmePath := filepath.Join(repoPath, "README.md")
	require.NoError(t, os.WriteFile(readmePath, []byte("# Test Repository\n"), 0644))

	runGitWithEnv(t, repoPath, gitEnv, "add", "README.md")
	runGitWithEnv(t, repoPath, gitEnv, "commit", "-m", "Initial commit")
}

// commitFile writes a file and commits it with the global git identity, running the hooks.
func commitFile(t *testing.T, repoPath, name, message string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(repoPath, name), []byte(name+"\n"), 0644))
	runGitWithEnv(t, repoPath, os.Environ(), "add", name)
	runGitWithEnv(t, repoPath, os.Environ(), "commit", "-m", message)
}

// lastCommit returns a field of the last commit, formatted with git log --format.
func lastCommit(t *testing.T, repoPath, format string) string {
	t.Helper()
	return strings.TrimSpace(runGitWithEnv(t, repoPath, os.Environ(), "log", "-1", "--format="+format))
}

// globalConfig returns a value of the global git configuration.
func globalConfig(t *testing.T, key string) string {
	t.Helper()

	cmd := exec.Command("git", "config", "--global", key)
	output, err := cmd.Output()
	require.NoError(t, err, "global git config %s should be set", key)
	return strings.TrimSpace(string(output))
}

func runGitWithEnv(t *testing.T, dir string, env []string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = env
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v failed: %s", args, string(output))
	return string(output)
}

// readStatusFile reads and parses the status.yaml file
func readStatusFile(t *testing.T, statusPath string) *StatusFile {
	t.Helper()

	data, err := os.ReadFile(statusPath)
	require.NoError(t, err)

	var s StatusFile
	require.NoError(t, yaml.Unmarshal(data, &s))
	return &s
}
