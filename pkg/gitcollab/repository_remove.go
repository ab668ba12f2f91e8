package gitcollab

import (
	"fmt"

	"github.com/lerenn/git-collab/pkg/gitcollab/consts"
	"github.com/lerenn/git-collab/pkg/status"
)

// RemoveRepository unregisters the repository at path. The post-commit hook is torn
// down only when the record is valid. Unknown paths leave the registry untouched.
func (c *realGitCollab) RemoveRepository(path string) ([]status.Repository, error) {
	return c.executeWithHooksAndReturnRepositories(consts.RemoveRepository, map[string]interface{}{
		"path": path,
	}, func() ([]status.Repository, error) {
		return c.removeRepository(path)
	})
}

func (c *realGitCollab) removeRepository(path string) ([]status.Repository, error) {
	path = normalizePath(path)

	repositories, err := c.deps.StatusManager.ListRepositories()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRepositoriesLoad, err)
	}

	index := -1
	for i, r := range repositories {
		if r.Path == path {
			index = i
			break
		}
	}
	if index == -1 {
		c.VerbosePrint("Repository %s is not registered", path)
		return repositories, nil
	}

	found := repositories[index]
	if found.IsValid {
		if err := c.deps.Installer.Remove(path, found.HooksPath); err != nil {
			return nil, fmt.Errorf("%w from %s: %w", ErrRepositoryRemove, path, err)
		}
	} else {
		c.VerbosePrint("Repository %s is not valid, skipping hook removal", path)
	}

	return c.saveRepositories(withoutPath(repositories, path))
}
