package repository

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/git-collab/cmd/git-collab/internal/cli"
	"github.com/spf13/cobra"
)

func createAddCmd() *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add <path>",
		Short: "Install the post-commit hook in a repository",
		Long: `Install the git-collab post-commit hook in a repository and its submodules,
then register the repository so that "git-collab init" keeps it up to date.

An existing post-commit hook keeps running: git-collab puts its trampoline at the top
of the script, in place of the original shebang line, and leaves the rest untouched.

Examples:
  git-collab repository add .
  git-collab repo add ~/code/my-project`,
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

			repositories, err := gc.AddRepository(path)
			if err != nil {
				return err
			}

			printRepositories(cmd, repositories)
			return nil
		},
	}

	return addCmd
}
