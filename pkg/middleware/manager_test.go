//go:build unit

package middleware

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lerenn/git-collab/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHook records its calls in a shared journal.
type recordingHook struct {
	name     string
	priority int
	journal  *[]string
	err      error
}

func (h *recordingHook) Name() string  { return h.name }
func (h *recordingHook) Priority() int { return h.priority }

func (h *recordingHook) PreExecute(_ *OperationContext) error {
	*h.journal = append(*h.journal, "pre:"+h.name)
	return h.err
}

func (h *recordingHook) PostExecute(_ *OperationContext) error {
	*h.journal = append(*h.journal, "post:"+h.name)
	return h.err
}

func (h *recordingHook) OnError(_ *OperationContext) error {
	*h.journal = append(*h.journal, "error:"+h.name)
	return h.err
}

func TestManager_ExecutesByPriority(t *testing.T) {
	var journal []string
	m := NewManager()

	late := &recordingHook{name: "late", priority: 200, journal: &journal}
	early := &recordingHook{name: "early", priority: 50, journal: &journal}

	require.NoError(t, m.RegisterPreHook("add", late))
	require.NoError(t, m.RegisterPreHook("add", early))
	require.NoError(t, m.RegisterPostHook("add", late))
	require.NoError(t, m.RegisterPostHook("add", early))
	require.NoError(t, m.RegisterErrorHook("add", early))

	ctx := &OperationContext{OperationName: "add"}
	require.NoError(t, m.ExecutePreHooks("add", ctx))
	require.NoError(t, m.ExecutePostHooks("add", ctx))
	require.NoError(t, m.ExecuteErrorHooks("add", ctx))

	assert.Equal(t, []string{"pre:early", "pre:late", "post:early", "post:late", "error:early"}, journal)
}

func TestManager_OperationsAreIsolated(t *testing.T) {
	var journal []string
	m := NewManager()

	require.NoError(t, m.RegisterPreHook("add", &recordingHook{name: "add", journal: &journal}))
	require.NoError(t, m.ExecutePreHooks("remove", &OperationContext{OperationName: "remove"}))

	assert.Empty(t, journal)
}

func TestManager_HookErrorStopsExecution(t *testing.T) {
	var journal []string
	m := NewManager()
	hookErr := errors.New("boom")

	require.NoError(t, m.RegisterPreHook("add", &recordingHook{name: "failing", priority: 1, journal: &journal, err: hookErr}))
	require.NoError(t, m.RegisterPreHook("add", &recordingHook{name: "next", priority: 2, journal: &journal}))

	err := m.ExecutePreHooks("add", &OperationContext{OperationName: "add"})

	assert.ErrorIs(t, err, hookErr)
	assert.Equal(t, []string{"pre:failing"}, journal)
}

func TestManager_RejectsNilHook(t *testing.T) {
	m := NewManager()

	assert.ErrorIs(t, m.RegisterPreHook("add", nil), ErrNilHook)
	assert.ErrorIs(t, m.RegisterPostHook("add", nil), ErrNilHook)
	assert.ErrorIs(t, m.RegisterErrorHook("add", nil), ErrNilHook)
}

func TestRegisterLoggingHook(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager()

	require.NoError(t, RegisterLoggingHook(m, logger.NewLogger(&buf, zerolog.DebugLevel), "add", "remove"))

	ctx := &OperationContext{
		OperationName: "remove",
		Parameters:    map[string]interface{}{"path": "/code/api"},
		Error:         errors.New("permission denied"),
	}
	require.NoError(t, m.ExecutePreHooks("remove", ctx))
	require.NoError(t, m.ExecuteErrorHooks("remove", ctx))

	assert.Contains(t, buf.String(), "Starting operation: remove with params: map[path:/code/api]")
	assert.Contains(t, buf.String(), "Operation failed: remove, error: permission denied")
}
