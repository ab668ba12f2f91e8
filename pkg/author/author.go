// Package author configures the git author and co-authors from the rotation of users.
package author

import (
	"github.com/lerenn/git-collab/pkg/git"
	"github.com/lerenn/git-collab/pkg/logger"
	"github.com/lerenn/git-collab/pkg/status"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=author.go -destination=mocks/author.gen.go -package=mocks

// Global git configuration keys written by git-collab.
const (
	UserNameKey  = "user.name"
	UserEmailKey = "user.email"
	CoAuthorsKey = "git-collab.co-authors"
	LogAliasKey  = "alias.lg"
)

// Author interface provides git author configuration.
type Author interface {
	// Apply sets the first active user as git author and the other active users as co-authors.
	// Nothing is written when no user is active.
	Apply(users []status.User) error

	// SetGitLogAlias points the `git lg` alias at the pretty-log script.
	SetGitLogAlias(scriptPath string) error
}

type realAuthor struct {
	git    git.Git
	logger logger.Logger
}

// NewAuthor creates a new Author instance.
func NewAuthor(g git.Git, l logger.Logger) Author {
	if l == nil {
		l = logger.NewNoopLogger()
	}

	return &realAuthor{
		git:    g,
		logger: l,
	}
}
