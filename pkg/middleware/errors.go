package middleware

import "errors"

// Error definitions for middleware package.
var (
	ErrNilHook = errors.New("hook cannot be nil")
)
