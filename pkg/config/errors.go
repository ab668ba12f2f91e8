package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrRootDirEmpty    = errors.New("root_dir cannot be empty")
	ErrStatusFileEmpty = errors.New("status_file cannot be empty")
	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("git-collab configuration not found. Run 'git-collab init' to initialize")
)
