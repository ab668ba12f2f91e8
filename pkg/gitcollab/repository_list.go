package gitcollab

import (
	"fmt"

	"github.com/lerenn/git-collab/pkg/gitcollab/consts"
	"github.com/lerenn/git-collab/pkg/status"
)

// ListRepositories lists the registered repositories, sorted by name.
func (c *realGitCollab) ListRepositories() ([]status.Repository, error) {
	return c.executeWithHooksAndReturnRepositories(consts.ListRepositories, map[string]interface{}{},
		func() ([]status.Repository, error) {
			repositories, err := c.deps.StatusManager.ListRepositories()
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrRepositoriesLoad, err)
			}
			return repositories, nil
		})
}
