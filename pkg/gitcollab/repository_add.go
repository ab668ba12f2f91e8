package gitcollab

import (
	"fmt"
	"strings"

	"github.com/lerenn/git-collab/pkg/gitcollab/consts"
	"github.com/lerenn/git-collab/pkg/status"
)

// AddRepository installs the post-commit hook in the repository at path and registers it,
// replacing any record with the same path. The record is kept even when the path is not a
// valid git repository, with IsValid set to false.
func (c *realGitCollab) AddRepository(path string) ([]status.Repository, error) {
	return c.executeWithHooksAndReturnRepositories(consts.AddRepository, map[string]interface{}{
		"path": path,
	}, func() ([]status.Repository, error) {
		return c.addRepository(path)
	})
}

func (c *realGitCollab) addRepository(path string) ([]status.Repository, error) {
	path = normalizePath(path)
	if path == "" {
		return nil, ErrRepositoryPathEmpty
	}

	repositories, err := c.deps.StatusManager.ListRepositories()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRepositoriesLoad, err)
	}

	c.VerbosePrint("Installing post-commit hook in %s", path)
	result, err := c.deps.Installer.Install(path)
	if err != nil {
		return nil, fmt.Errorf("%w in %s: %w", ErrRepositoryInstall, path, err)
	}

	repositories = withoutPath(repositories, path)
	repositories = append(repositories, status.Repository{
		Name:      nameFromPath(path),
		Path:      path,
		HooksPath: result.HooksPath,
		IsValid:   result.IsValid,
	})

	return c.saveRepositories(repositories)
}

// saveRepositories persists repositories and returns them in their stored order.
func (c *realGitCollab) saveRepositories(repositories []status.Repository) ([]status.Repository, error) {
	if err := c.deps.StatusManager.SetRepositories(repositories); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRepositoriesSave, err)
	}

	repositories, err := c.deps.StatusManager.ListRepositories()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRepositoriesLoad, err)
	}
	return repositories, nil
}

// normalizePath removes one trailing path separator, either / or \.
func normalizePath(path string) string {
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, `\`) {
		return path[:len(path)-1]
	}
	return path
}

// nameFromPath returns the last segment of path, splitting on both / and \.
func nameFromPath(path string) string {
	return path[strings.LastIndexAny(path, `/\`)+1:]
}

// withoutPath returns repositories minus the record registered for path.
func withoutPath(repositories []status.Repository, path string) []status.Repository {
	kept := make([]status.Repository, 0, len(repositories))
	for _, r := range repositories {
		if r.Path != path {
			kept = append(kept, r)
		}
	}
	return kept
}
