// Package installer installs and removes the git-collab post-commit hook chain in repositories.
package installer

import (
	"github.com/lerenn/git-collab/pkg/fs"
	"github.com/lerenn/git-collab/pkg/git"
	"github.com/lerenn/git-collab/pkg/hookpath"
	"github.com/lerenn/git-collab/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=installer.go -destination=mocks/installer.gen.go -package=mocks

// Result describes the hook installation of a repository.
type Result struct {
	HooksPath string
	IsValid   bool
}

// Installer interface provides hook installation and removal.
type Installer interface {
	// Install wires the post-commit hook chain into the repository at repoPath and its submodules.
	// A missing path or a path that is not a git repository gives an invalid result, not an error.
	Install(repoPath string) (Result, error)

	// Remove strips the post-commit hook chain from hooksPath and from the submodules of repoPath.
	Remove(repoPath, hooksPath string) error
}

// NewInstallerParams contains parameters for creating a new Installer.
type NewInstallerParams struct {
	FS          fs.FS
	Git         git.Git
	Resolver    hookpath.Resolver
	Logger      logger.Logger
	PayloadFile string // Canonical payload script copied into every hooks directory
}

type realInstaller struct {
	fs          fs.FS
	git         git.Git
	resolver    hookpath.Resolver
	logger      logger.Logger
	payloadFile string
}

// NewInstaller creates a new Installer instance.
func NewInstaller(params NewInstallerParams) Installer {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}

	return &realInstaller{
		fs:          params.FS,
		git:         params.Git,
		resolver:    params.Resolver,
		logger:      l,
		payloadFile: params.PayloadFile,
	}
}
