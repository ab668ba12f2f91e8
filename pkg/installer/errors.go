package installer

import "errors"

// Error definitions for installer package.
var (
	ErrPayloadRead      = errors.New("failed to read payload script")
	ErrPayloadWrite     = errors.New("failed to write payload script")
	ErrTrampolineWrite  = errors.New("failed to write post-commit hook")
	ErrTrampolineRemove = errors.New("failed to remove post-commit hook")
	ErrSubmoduleStatus  = errors.New("failed to list submodules")
	ErrSubmoduleList    = errors.New("failed to read submodules directory")
)
