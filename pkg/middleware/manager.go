package middleware

import (
	"fmt"
	"sort"
	"sync"
)

// Manager defines the interface for hook management.
type Manager interface {
	// Hook registration.
	RegisterPreHook(operation string, hook PreHook) error
	RegisterPostHook(operation string, hook PostHook) error
	RegisterErrorHook(operation string, hook ErrorHook) error

	// Hook execution.
	ExecutePreHooks(operation string, ctx *OperationContext) error
	ExecutePostHooks(operation string, ctx *OperationContext) error
	ExecuteErrorHooks(operation string, ctx *OperationContext) error
}

// realManager manages hook registration and execution.
type realManager struct {
	preHooks   map[string][]PreHook
	postHooks  map[string][]PostHook
	errorHooks map[string][]ErrorHook
	mu         sync.RWMutex
}

// NewManager creates a new Manager instance.
func NewManager() Manager {
	return &realManager{
		preHooks:   make(map[string][]PreHook),
		postHooks:  make(map[string][]PostHook),
		errorHooks: make(map[string][]ErrorHook),
	}
}

// RegisterPreHook registers a pre-hook for a specific operation.
func (m *realManager) RegisterPreHook(operation string, hook PreHook) error {
	if hook == nil {
		return ErrNilHook
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.preHooks[operation] = append(m.preHooks[operation], hook)
	sortByPriority(m.preHooks[operation])
	return nil
}

// RegisterPostHook registers a post-hook for a specific operation.
func (m *realManager) RegisterPostHook(operation string, hook PostHook) error {
	if hook == nil {
		return ErrNilHook
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.postHooks[operation] = append(m.postHooks[operation], hook)
	sortByPriority(m.postHooks[operation])
	return nil
}

// RegisterErrorHook registers an error-hook for a specific operation.
func (m *realManager) RegisterErrorHook(operation string, hook ErrorHook) error {
	if hook == nil {
		return ErrNilHook
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.errorHooks[operation] = append(m.errorHooks[operation], hook)
	sortByPriority(m.errorHooks[operation])
	return nil
}

// ExecutePreHooks executes all pre-hooks for a specific operation.
func (m *realManager) ExecutePreHooks(operation string, ctx *OperationContext) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, hook := range m.preHooks[operation] {
		if err := hook.PreExecute(ctx); err != nil {
			return fmt.Errorf("pre-hook %s failed: %w", hook.Name(), err)
		}
	}
	return nil
}

// ExecutePostHooks executes all post-hooks for a specific operation.
func (m *realManager) ExecutePostHooks(operation string, ctx *OperationContext) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, hook := range m.postHooks[operation] {
		if err := hook.PostExecute(ctx); err != nil {
			return fmt.Errorf("post-hook %s failed: %w", hook.Name(), err)
		}
	}
	return nil
}

// ExecuteErrorHooks executes all error-hooks for a specific operation.
func (m *realManager) ExecuteErrorHooks(operation string, ctx *OperationContext) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, hook := range m.errorHooks[operation] {
		if err := hook.OnError(ctx); err != nil {
			return fmt.Errorf("error-hook %s failed: %w", hook.Name(), err)
		}
	}
	return nil
}

// sortByPriority orders hooks so that lower priorities run first.
func sortByPriority[H Hook](hooks []H) {
	sort.SliceStable(hooks, func(i, j int) bool {
		return hooks[i].Priority() < hooks[j].Priority()
	})
}
