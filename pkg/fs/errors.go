// Package fs provides file system operations and error definitions.
package fs

import "errors"

// Error definitions for fs package.
var (
	// File lock errors.
	ErrFileLock        = errors.New("failed to acquire file lock")
	ErrFileLockTimeout = errors.New("timed out waiting for file lock")
)
