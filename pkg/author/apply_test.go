//go:build unit

package author

import (
	"testing"

	gitmocks "github.com/lerenn/git-collab/pkg/git/mocks"
	"github.com/lerenn/git-collab/pkg/logger"
	"github.com/lerenn/git-collab/pkg/status"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestApply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGit := gitmocks.NewMockGit(ctrl)
	author := NewAuthor(mockGit, logger.NewNoopLogger())

	users := []status.User{
		{ID: "1", Name: "Inactive", Email: "inactive@example.com", Active: false},
		{ID: "2", Name: "Jane Doe", Email: "jane@example.com", Active: true},
		{ID: "3", Name: "John Doe", Email: "john@example.com", Active: true},
		{ID: "4", Name: "Max Mustermann", Email: "max@example.com", Active: true},
	}

	gomock.InOrder(
		mockGit.EXPECT().ConfigSetGlobal("user.name", "Jane Doe").Return(nil),
		mockGit.EXPECT().ConfigSetGlobal("user.email", "jane@example.com").Return(nil),
		mockGit.EXPECT().ConfigSetGlobal("git-collab.co-authors",
			"Co-Authored-By: John Doe <john@example.com>;Co-Authored-By: Max Mustermann <max@example.com>").Return(nil),
	)

	assert.NoError(t, author.Apply(users))
}

func TestApply_SingleActiveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGit := gitmocks.NewMockGit(ctrl)
	author := NewAuthor(mockGit, nil)

	mockGit.EXPECT().ConfigSetGlobal("user.name", "Jane Doe").Return(nil)
	mockGit.EXPECT().ConfigSetGlobal("user.email", "jane@example.com").Return(nil)
	mockGit.EXPECT().ConfigSetGlobal("git-collab.co-authors", "").Return(nil)

	assert.NoError(t, author.Apply([]status.User{{ID: "1", Name: "Jane Doe", Email: "jane@example.com", Active: true}}))
}

func TestApply_NoActiveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No git call is expected
	mockGit := gitmocks.NewMockGit(ctrl)
	author := NewAuthor(mockGit, nil)

	assert.NoError(t, author.Apply([]status.User{{ID: "1", Name: "Jane", Email: "jane@example.com"}}))
	assert.NoError(t, author.Apply(nil))
}

func TestApply_GitError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGit := gitmocks.NewMockGit(ctrl)
	author := NewAuthor(mockGit, nil)

	mockGit.EXPECT().ConfigSetGlobal("user.name", "Jane").Return(assert.AnError)

	err := author.Apply([]status.User{{ID: "1", Name: "Jane", Email: "jane@example.com", Active: true}})

	assert.ErrorIs(t, err, assert.AnError)
}

func TestSetGitLogAlias(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGit := gitmocks.NewMockGit(ctrl)
	author := NewAuthor(mockGit, nil)

	mockGit.EXPECT().ConfigSetGlobal("alias.lg", "!C:/Users/jane/.git-collab/git-log-co-author").Return(nil)

	assert.NoError(t, author.SetGitLogAlias(`C:\Users\jane\.git-collab\git-log-co-author`))
}
