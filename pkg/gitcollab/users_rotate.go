package gitcollab

import (
	"fmt"

	"github.com/lerenn/git-collab/pkg/author"
	"github.com/lerenn/git-collab/pkg/gitcollab/consts"
)

// RotateUsers moves the current author behind the other active users, persists the new
// order and applies it to the global git configuration.
func (c *realGitCollab) RotateUsers() error {
	return c.executeWithHooks(consts.RotateUsers, map[string]interface{}{}, c.rotateUsers)
}

func (c *realGitCollab) rotateUsers() error {
	users, err := c.deps.StatusManager.ListUsers()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsersLoad, err)
	}

	rotated := author.Rotate(users)
	if err := c.deps.StatusManager.SetUsers(rotated); err != nil {
		return fmt.Errorf("%w: %w", ErrUsersSave, err)
	}

	if err := c.deps.Author.Apply(rotated); err != nil {
		return fmt.Errorf("%w: %w", ErrUsersApply, err)
	}
	return nil
}
