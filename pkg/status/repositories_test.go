//go:build unit

package status

import (
	"testing"

	"github.com/lerenn/git-collab/pkg/config"
	fsmocks "github.com/lerenn/git-collab/pkg/fs/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

func newTestManager(t *testing.T) (*realManager, *fsmocks.MockFS, config.Config) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)

	cfg := config.Config{
		RootDir:    "/home/user/.git-collab",
		StatusFile: "/home/user/.git-collab/status.yaml",
	}

	return &realManager{fs: mockFS, config: cfg}, mockFS, cfg
}

func TestListRepositories(t *testing.T) {
	manager, mockFS, cfg := newTestManager(t)

	existing := &Status{
		Users: []User{},
		Repositories: []Repository{
			{Name: "api", Path: "/code/api", HooksPath: "/code/api/.git/hooks", IsValid: true},
			{Name: "web", Path: "/code/web"},
		},
	}
	existingData, _ := yaml.Marshal(existing)

	mockFS.EXPECT().Exists(cfg.StatusFile).Return(true, nil)
	mockFS.EXPECT().ReadFile(cfg.StatusFile).Return(existingData, nil)

	repositories, err := manager.ListRepositories()

	require.NoError(t, err)
	assert.Equal(t, existing.Repositories, repositories)
}

func TestListRepositories_CreatesMissingStatusFile(t *testing.T) {
	manager, mockFS, cfg := newTestManager(t)

	expectedData, _ := yaml.Marshal(newInitialStatus())

	gomock.InOrder(
		mockFS.EXPECT().Exists(cfg.StatusFile).Return(false, nil),
		mockFS.EXPECT().FileLock(cfg.StatusFile).Return(func() {}, nil),
		mockFS.EXPECT().Exists(cfg.StatusFile).Return(false, nil),
		mockFS.EXPECT().WriteFileAtomic(cfg.StatusFile, expectedData, gomock.Any()).Return(nil),
	)

	repositories, err := manager.ListRepositories()

	require.NoError(t, err)
	assert.Empty(t, repositories)
}

func TestListRepositories_ParseError(t *testing.T) {
	manager, mockFS, cfg := newTestManager(t)

	mockFS.EXPECT().Exists(cfg.StatusFile).Return(true, nil)
	mockFS.EXPECT().ReadFile(cfg.StatusFile).Return([]byte("repositories: [unclosed"), nil)

	_, err := manager.ListRepositories()

	assert.ErrorIs(t, err, ErrStatusFileParse)
}

func TestSetRepositories_SortsByName(t *testing.T) {
	manager, mockFS, cfg := newTestManager(t)

	existingData, _ := yaml.Marshal(&Status{
		Users:        []User{{ID: "1", Name: "Jane", Email: "jane@example.com", Active: true}},
		Repositories: []Repository{},
	})

	expectedData, _ := yaml.Marshal(&Status{
		Users: []User{{ID: "1", Name: "Jane", Email: "jane@example.com", Active: true}},
		Repositories: []Repository{
			{Name: "api", Path: "/code/api"},
			{Name: "web", Path: "/code/web"},
		},
	})

	unlocked := false
	gomock.InOrder(
		mockFS.EXPECT().FileLock(cfg.StatusFile).Return(func() { unlocked = true }, nil),
		mockFS.EXPECT().Exists(cfg.StatusFile).Return(true, nil),
		mockFS.EXPECT().ReadFile(cfg.StatusFile).Return(existingData, nil),
		mockFS.EXPECT().WriteFileAtomic(cfg.StatusFile, expectedData, gomock.Any()).Return(nil),
	)

	err := manager.SetRepositories([]Repository{
		{Name: "web", Path: "/code/web"},
		{Name: "api", Path: "/code/api"},
	})

	assert.NoError(t, err)
	assert.True(t, unlocked)
}

func TestSetRepositories_LockFailure(t *testing.T) {
	manager, mockFS, cfg := newTestManager(t)

	mockFS.EXPECT().FileLock(cfg.StatusFile).Return(nil, assert.AnError)

	err := manager.SetRepositories([]Repository{{Name: "api", Path: "/code/api"}})

	assert.ErrorIs(t, err, assert.AnError)
}

func TestStatusFileNotConfigured(t *testing.T) {
	manager := &realManager{config: config.Config{}}

	_, err := manager.ListRepositories()

	assert.ErrorIs(t, err, ErrConfigurationNotInitialized)
}
