//go:build unit

package gitcollab

import (
	"testing"

	authormocks "github.com/lerenn/git-collab/pkg/author/mocks"
	"github.com/lerenn/git-collab/pkg/config"
	"github.com/lerenn/git-collab/pkg/dependencies"
	fsmocks "github.com/lerenn/git-collab/pkg/fs/mocks"
	gitmocks "github.com/lerenn/git-collab/pkg/git/mocks"
	installermocks "github.com/lerenn/git-collab/pkg/installer/mocks"
	"github.com/lerenn/git-collab/pkg/middleware"
	statusmocks "github.com/lerenn/git-collab/pkg/status/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testExecutable = "/usr/local/bin/git-collab"
	testGOOS       = "linux"
)

type testMocks struct {
	fs        *fsmocks.MockFS
	status    *statusmocks.MockManager
	installer *installermocks.MockInstaller
	author    *authormocks.MockAuthor
}

func testConfig() config.Config {
	return config.Config{
		RootDir:    "/home/user/.git-collab",
		StatusFile: "/home/user/.git-collab/status.yaml",
	}
}

func newTestGitCollab(t *testing.T) (*realGitCollab, *testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &testMocks{
		fs:        fsmocks.NewMockFS(ctrl),
		status:    statusmocks.NewMockManager(ctrl),
		installer: installermocks.NewMockInstaller(ctrl),
		author:    authormocks.NewMockAuthor(ctrl),
	}

	gc, err := NewGitCollab(NewGitCollabParams{
		Config: testConfig(),
		Dependencies: dependencies.New().
			WithFS(m.fs).
			WithGit(gitmocks.NewMockGit(ctrl)).
			WithStatusManager(m.status).
			WithInstaller(m.installer).
			WithAuthor(m.author),
		Executable: testExecutable,
		GOOS:       testGOOS,
	})
	require.NoError(t, err)

	return gc.(*realGitCollab), m
}

func TestNewGitCollab_MissingDependency(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := NewGitCollab(NewGitCollabParams{
		Config: testConfig(),
		Dependencies: dependencies.New().
			WithStatusManager(statusmocks.NewMockManager(ctrl)),
		Executable: testExecutable,
	})
	assert.ErrorIs(t, err, dependencies.ErrInstallerMissing)
}

func TestNewGitCollab_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)

	gc, err := NewGitCollab(NewGitCollabParams{
		Config: testConfig(),
		Dependencies: dependencies.New().
			WithStatusManager(statusmocks.NewMockManager(ctrl)).
			WithInstaller(installermocks.NewMockInstaller(ctrl)),
	})
	require.NoError(t, err)

	rgc := gc.(*realGitCollab)
	assert.NotEmpty(t, rgc.executable)
	assert.NotEmpty(t, rgc.goos)
}

type recordingHook struct {
	pre, post, failed []string
}

func (h *recordingHook) Name() string  { return "recording" }
func (h *recordingHook) Priority() int { return 0 }

func (h *recordingHook) PreExecute(ctx *middleware.OperationContext) error {
	h.pre = append(h.pre, ctx.OperationName)
	return nil
}

func (h *recordingHook) PostExecute(ctx *middleware.OperationContext) error {
	h.post = append(h.post, ctx.OperationName)
	return nil
}

func (h *recordingHook) OnError(ctx *middleware.OperationContext) error {
	h.failed = append(h.failed, ctx.OperationName)
	return nil
}

func TestExecuteWithHooks(t *testing.T) {
	gc, _ := newTestGitCollab(t)

	hook := &recordingHook{}
	require.NoError(t, gc.deps.Middleware.RegisterPreHook("op", hook))
	require.NoError(t, gc.deps.Middleware.RegisterPostHook("op", hook))
	require.NoError(t, gc.deps.Middleware.RegisterErrorHook("op", hook))

	err := gc.executeWithHooks("op", nil, func() error { return nil })
	require.NoError(t, err)

	err = gc.executeWithHooks("op", nil, func() error { return assert.AnError })
	assert.ErrorIs(t, err, assert.AnError)

	assert.Equal(t, []string{"op", "op"}, hook.pre)
	assert.Equal(t, []string{"op"}, hook.post)
	assert.Equal(t, []string{"op"}, hook.failed)
}

func TestExecuteWithHooks_Panic(t *testing.T) {
	gc, _ := newTestGitCollab(t)

	err := gc.executeWithHooks("op", nil, func() error {
		panic("boom")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic in op: boom")
}

func TestExecuteWithHooks_PreHookFailure(t *testing.T) {
	gc, _ := newTestGitCollab(t)

	require.NoError(t, gc.deps.Middleware.RegisterPreHook("op", failingPreHook{}))

	called := false
	err := gc.executeWithHooks("op", nil, func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, called)
}

type failingPreHook struct{}

func (failingPreHook) Name() string  { return "failing" }
func (failingPreHook) Priority() int { return 0 }
func (failingPreHook) PreExecute(_ *middleware.OperationContext) error {
	return assert.AnError
}
