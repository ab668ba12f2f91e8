// Package status provides status management functionality and error definitions.
package status

import "errors"

// Error definitions for status package.
var (
	ErrConfigurationNotInitialized = errors.New("status file path is not configured")

	// Status file errors.
	ErrStatusFileParse = errors.New("failed to parse status file")
)
