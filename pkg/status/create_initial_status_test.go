//go:build unit

package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

func TestCreateInitialStatus_Success(t *testing.T) {
	manager, mockFS, cfg := newTestManager(t)

	expectedData, _ := yaml.Marshal(newInitialStatus())

	mockFS.EXPECT().FileLock(cfg.StatusFile).Return(func() {}, nil)
	mockFS.EXPECT().Exists(cfg.StatusFile).Return(false, nil)
	mockFS.EXPECT().WriteFileAtomic(cfg.StatusFile, expectedData, gomock.Any()).Return(nil)

	assert.NoError(t, manager.CreateInitialStatus())
}

func TestCreateInitialStatus_AlreadyExists(t *testing.T) {
	manager, mockFS, cfg := newTestManager(t)

	mockFS.EXPECT().FileLock(cfg.StatusFile).Return(func() {}, nil)
	mockFS.EXPECT().Exists(cfg.StatusFile).Return(true, nil)

	assert.NoError(t, manager.CreateInitialStatus())
}

func TestCreateInitialStatus_SaveStatusFailure(t *testing.T) {
	manager, mockFS, cfg := newTestManager(t)

	mockFS.EXPECT().FileLock(cfg.StatusFile).Return(func() {}, nil)
	mockFS.EXPECT().Exists(cfg.StatusFile).Return(false, nil)
	mockFS.EXPECT().WriteFileAtomic(cfg.StatusFile, gomock.Any(), gomock.Any()).Return(assert.AnError)

	assert.ErrorIs(t, manager.CreateInitialStatus(), assert.AnError)
}
