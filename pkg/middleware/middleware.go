// Package middleware provides pre, post and error hooks run around git-collab operations.
package middleware

// OperationContext provides context for hook execution.
type OperationContext struct {
	OperationName string
	Parameters    map[string]interface{}
	Results       map[string]interface{}
	Error         error
	Metadata      map[string]interface{}
}

// Hook defines the interface for all hooks.
type Hook interface {
	Name() string
	Priority() int
}

// PreHook executes before an operation.
type PreHook interface {
	Hook
	PreExecute(ctx *OperationContext) error
}

// PostHook executes after a successful operation.
type PostHook interface {
	Hook
	PostExecute(ctx *OperationContext) error
}

// ErrorHook executes when an operation fails.
type ErrorHook interface {
	Hook
	OnError(ctx *OperationContext) error
}
