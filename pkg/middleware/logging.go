package middleware

import (
	"github.com/lerenn/git-collab/pkg/logger"
)

// LoggingHook provides logging functionality for all operations.
type LoggingHook struct {
	logger logger.Logger
}

// NewLoggingHook creates a new LoggingHook instance.
func NewLoggingHook(logger logger.Logger) *LoggingHook {
	return &LoggingHook{
		logger: logger,
	}
}

// Name returns the hook name.
func (h *LoggingHook) Name() string {
	return "logging"
}

// Priority returns the hook priority (lower numbers execute first).
func (h *LoggingHook) Priority() int {
	return 100
}

// PreExecute logs the start of an operation.
func (h *LoggingHook) PreExecute(ctx *OperationContext) error {
	h.logger.Logf("Starting operation: %s with params: %v", ctx.OperationName, ctx.Parameters)
	return nil
}

// PostExecute logs the completion of an operation.
func (h *LoggingHook) PostExecute(ctx *OperationContext) error {
	h.logger.Logf("Operation completed: %s with results: %v", ctx.OperationName, ctx.Results)
	return nil
}

// OnError logs when an operation fails.
func (h *LoggingHook) OnError(ctx *OperationContext) error {
	h.logger.Logf("Operation failed: %s, error: %v", ctx.OperationName, ctx.Error)
	return nil
}

// RegisterLoggingHook registers a logging hook as pre, post and error hook of every operation.
func RegisterLoggingHook(m Manager, l logger.Logger, operations ...string) error {
	hook := NewLoggingHook(l)
	for _, operation := range operations {
		if err := m.RegisterPreHook(operation, hook); err != nil {
			return err
		}
		if err := m.RegisterPostHook(operation, hook); err != nil {
			return err
		}
		if err := m.RegisterErrorHook(operation, hook); err != nil {
			return err
		}
	}
	return nil
}
