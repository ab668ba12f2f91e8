// Package hookpath resolves the directory git reads hooks from for a repository.
package hookpath

import (
	"path/filepath"
	"strings"

	"github.com/lerenn/git-collab/pkg/git"
	"github.com/lerenn/git-collab/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=resolver.go -destination=mocks/resolver.gen.go -package=mocks

// HooksPathConfigKey is the git configuration key overriding the hooks directory.
const HooksPathConfigKey = "core.hooksPath"

// hiddenManagerDirs lists hook managers that point core.hooksPath at an internal
// "_" subdirectory which must not be written to.
var hiddenManagerDirs = []string{".husky"}

// Resolver interface provides hooks directory resolution.
type Resolver interface {
	// Resolve returns the hooks directory of the repository at repoPath.
	// It never fails: any configuration read error falls back to repoPath/.git/hooks.
	Resolve(repoPath string) string
}

type realResolver struct {
	git    git.Git
	logger logger.Logger
}

// NewResolver creates a new Resolver instance.
func NewResolver(g git.Git, l logger.Logger) Resolver {
	if l == nil {
		l = logger.NewNoopLogger()
	}

	return &realResolver{
		git:    g,
		logger: l,
	}
}

// Resolve returns the hooks directory of the repository at repoPath.
func (r *realResolver) Resolve(repoPath string) string {
	hooksPath := DefaultHooksPath(repoPath)

	output, err := r.git.ConfigGetLocal(repoPath, HooksPathConfigKey)
	if err != nil {
		r.logger.Logf("No local %s for %s, using %s: %v", HooksPathConfigKey, repoPath, hooksPath, err)
		return hooksPath
	}

	localHooksPath := strings.TrimSpace(output)
	if localHooksPath == "" {
		return hooksPath
	}

	if filepath.IsAbs(localHooksPath) {
		hooksPath = filepath.Clean(localHooksPath)
	} else {
		hooksPath = filepath.Join(repoPath, localHooksPath)
	}

	return publicHooksDir(hooksPath)
}

// DefaultHooksPath returns git's native hooks directory for the repository at repoPath.
func DefaultHooksPath(repoPath string) string {
	return filepath.Join(repoPath, ".git", "hooks")
}

// IsNative reports whether hooksPath is a git managed `.git/hooks` directory.
func IsNative(hooksPath string) bool {
	return strings.HasSuffix(filepath.ToSlash(hooksPath), ".git/hooks")
}

// publicHooksDir rewrites a hook manager internal directory to its public one.
func publicHooksDir(hooksPath string) string {
	slashed := filepath.ToSlash(hooksPath)
	for _, dir := range hiddenManagerDirs {
		if strings.HasSuffix(slashed, dir+"/_") {
			return filepath.Dir(hooksPath)
		}
	}
	return hooksPath
}
