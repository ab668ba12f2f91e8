// Package gitcollab provides the git-collab operations and their error definitions.
package gitcollab

import "errors"

// Error definitions for gitcollab package.
var (
	// Setup errors.
	ErrRootDirCreate      = errors.New("failed to create git-collab root directory")
	ErrScriptWrite        = errors.New("failed to write script")
	ErrStatusInitialize   = errors.New("failed to initialize status file")
	ErrMiddlewareRegister = errors.New("failed to register middleware")

	// Repository errors.
	ErrRepositoryPathEmpty = errors.New("repository path cannot be empty")
	ErrRepositoryInstall   = errors.New("failed to install post-commit hook")
	ErrRepositoryRemove    = errors.New("failed to remove post-commit hook")
	ErrRepositoriesLoad    = errors.New("failed to load repositories from status file")
	ErrRepositoriesSave    = errors.New("failed to save repositories to status file")

	// User errors.
	ErrUsersLoad  = errors.New("failed to load users from status file")
	ErrUsersSave  = errors.New("failed to save users to status file")
	ErrUsersApply = errors.New("failed to apply git author configuration")
)
