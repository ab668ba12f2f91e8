// Package git provides Git operations and error definitions.
package git

import "errors"

// Git-specific error types.
var (
	ErrConfigNotSet   = errors.New("git config key not set")
	ErrCommandFailed  = errors.New("git command failed")
	ErrEmptyConfigKey = errors.New("git config key is empty")
)
