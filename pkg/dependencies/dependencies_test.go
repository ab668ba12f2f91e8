//go:build unit

package dependencies

import (
	"testing"

	authormocks "github.com/lerenn/git-collab/pkg/author/mocks"
	fsmocks "github.com/lerenn/git-collab/pkg/fs/mocks"
	gitmocks "github.com/lerenn/git-collab/pkg/git/mocks"
	installermocks "github.com/lerenn/git-collab/pkg/installer/mocks"
	"github.com/lerenn/git-collab/pkg/logger"
	"github.com/lerenn/git-collab/pkg/middleware"
	statusmocks "github.com/lerenn/git-collab/pkg/status/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDependencies_New_Defaults(t *testing.T) {
	deps := New()

	assert.NotNil(t, deps.FS)
	assert.NotNil(t, deps.Git)
	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.Middleware)
	assert.NotNil(t, deps.Author)
	assert.Nil(t, deps.StatusManager)
	assert.Nil(t, deps.Installer)
}

func TestDependencies_Validate_MissingStatusManager(t *testing.T) {
	deps := New()

	err := deps.Validate()

	assert.ErrorIs(t, err, ErrStatusManagerMissing)
}

func TestDependencies_Validate_MissingInstaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	deps := New().WithStatusManager(statusmocks.NewMockManager(ctrl))

	err := deps.Validate()

	assert.ErrorIs(t, err, ErrInstallerMissing)
}

func TestDependencies_Validate_AllMissing(t *testing.T) {
	deps := &Dependencies{}

	// Should return the first missing dependency (FS)
	assert.ErrorIs(t, deps.Validate(), ErrFSMissing)
}

func TestDependencies_FluentAPI(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockFS := fsmocks.NewMockFS(ctrl)
	mockGit := gitmocks.NewMockGit(ctrl)
	mockStatus := statusmocks.NewMockManager(ctrl)
	mockInstaller := installermocks.NewMockInstaller(ctrl)
	mockAuthor := authormocks.NewMockAuthor(ctrl)
	l := logger.NewNoopLogger()
	m := middleware.NewManager()

	deps := New().
		WithFS(mockFS).
		WithGit(mockGit).
		WithStatusManager(mockStatus).
		WithLogger(l).
		WithMiddleware(m).
		WithInstaller(mockInstaller).
		WithAuthor(mockAuthor)

	assert.NoError(t, deps.Validate())
	assert.Equal(t, mockFS, deps.FS)
	assert.Equal(t, mockGit, deps.Git)
	assert.Equal(t, mockStatus, deps.StatusManager)
	assert.Equal(t, l, deps.Logger)
	assert.Equal(t, m, deps.Middleware)
	assert.Equal(t, mockInstaller, deps.Installer)
	assert.Equal(t, mockAuthor, deps.Author)
}

func TestDependencies_Validate_DefaultsWithConfiguredComponents(t *testing.T) {
	ctrl := gomock.NewController(t)

	deps := New().
		WithStatusManager(statusmocks.NewMockManager(ctrl)).
		WithInstaller(installermocks.NewMockInstaller(ctrl))

	assert.NoError(t, deps.Validate())
}
