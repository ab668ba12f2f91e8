package repository

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/git-collab/cmd/git-collab/internal/cli"
	"github.com/spf13/cobra"
)

func createRemoveCmd() *cobra.Command {
	removeCmd := &cobra.Command{
		Use:     "remove <path>",
		Aliases: []string{"rm"},
		Short:   "Remove the post-commit hook from a repository",
		Long: `Remove the git-collab post-commit hook from a repository and its submodules,
then unregister the repository. The rest of an existing post-commit hook is kept.

Examples:
  git-collab repository remove .
  git-collab repo rm ~/code/my-project`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve path %s: %w", args[0], err)
			}

			gc, err := cli.GitCollabFactory()
			if err != nil {
				return err
			}

			repositories, err := gc.RemoveRepository(path)
			if err != nil {
				return err
			}

			printRepositories(cmd, repositories)
			return nil
		},
	}

	return removeCmd
}
