package gitcollab

import (
	"errors"
	"fmt"

	"github.com/lerenn/git-collab/pkg/gitcollab/consts"
)

// ReconcileRepositories re-installs the post-commit hook in every registered repository
// and refreshes their hooks path and validity. A failing repository keeps its previous
// record; the others are still processed and every failure is returned.
func (c *realGitCollab) ReconcileRepositories() error {
	return c.executeWithHooks(consts.ReconcileRepositories, map[string]interface{}{}, c.reconcileRepositories)
}

func (c *realGitCollab) reconcileRepositories() error {
	repositories, err := c.deps.StatusManager.ListRepositories()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRepositoriesLoad, err)
	}

	var errs []error
	for i, r := range repositories {
		c.VerbosePrint("Reconciling repository %s (%s)", r.Name, r.Path)

		result, err := c.deps.Installer.Install(r.Path)
		if err != nil {
			c.deps.Logger.Errorf("Failed to install post-commit hook in %s: %v", r.Path, err)
			errs = append(errs, fmt.Errorf("%w in %s: %w", ErrRepositoryInstall, r.Path, err))
			continue
		}

		repositories[i].HooksPath = result.HooksPath
		repositories[i].IsValid = result.IsValid
	}

	if err := c.deps.StatusManager.SetRepositories(repositories); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrRepositoriesSave, err))
	}

	return errors.Join(errs...)
}
