// Package dependencies provides a centralized dependency container for the git-collab application.
// Related dependencies are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"

	"github.com/lerenn/git-collab/pkg/author"
	"github.com/lerenn/git-collab/pkg/fs"
	"github.com/lerenn/git-collab/pkg/git"
	"github.com/lerenn/git-collab/pkg/installer"
	"github.com/lerenn/git-collab/pkg/logger"
	"github.com/lerenn/git-collab/pkg/middleware"
	"github.com/lerenn/git-collab/pkg/status"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing            = errors.New("fs dependency is required but not set")
	ErrGitMissing           = errors.New("git dependency is required but not set")
	ErrStatusManagerMissing = errors.New("status manager dependency is required but not set")
	ErrLoggerMissing        = errors.New("logger dependency is required but not set")
	ErrMiddlewareMissing    = errors.New("middleware dependency is required but not set")
	ErrInstallerMissing     = errors.New("installer dependency is required but not set")
	ErrAuthorMissing        = errors.New("author dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS            fs.FS
	Git           git.Git
	StatusManager status.Manager
	Logger        logger.Logger
	Middleware    middleware.Manager
	Installer     installer.Installer
	Author        author.Author
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	g := git.NewGit()
	l := logger.NewNoopLogger()

	return &Dependencies{
		FS:         fs.NewFS(),
		Git:        g,
		Logger:     l,
		Middleware: middleware.NewManager(),
		Author:     author.NewAuthor(g, l),
		// Note: StatusManager and Installer are left nil as they depend on the
		// configuration and are set via With* methods
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithStatusManager sets the status manager and returns the instance for chaining.
func (d *Dependencies) WithStatusManager(sm status.Manager) *Dependencies {
	d.StatusManager = sm
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithMiddleware sets the middleware manager and returns the instance for chaining.
func (d *Dependencies) WithMiddleware(m middleware.Manager) *Dependencies {
	d.Middleware = m
	return d
}

// WithInstaller sets the hook installer and returns the instance for chaining.
func (d *Dependencies) WithInstaller(i installer.Installer) *Dependencies {
	d.Installer = i
	return d
}

// WithAuthor sets the author configurator and returns the instance for chaining.
func (d *Dependencies) WithAuthor(a author.Author) *Dependencies {
	d.Author = a
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Git, ErrGitMissing},
		{d.StatusManager, ErrStatusManagerMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Middleware, ErrMiddlewareMissing},
		{d.Installer, ErrInstallerMissing},
		{d.Author, ErrAuthorMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
