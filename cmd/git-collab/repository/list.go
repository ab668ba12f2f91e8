package repository

import (
	"fmt"

	"github.com/lerenn/git-collab/cmd/git-collab/internal/cli"
	"github.com/lerenn/git-collab/pkg/status"
	"github.com/spf13/cobra"
)

func createListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List the registered repositories",
		Long: `List the repositories registered in git-collab.

Repositories are displayed in a numbered list format. An asterisk (*) indicates
repositories in which the post-commit hook could not be installed.

Examples:
  git-collab repository list
  git-collab repo ls`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gc, err := cli.GitCollabFactory()
			if err != nil {
				return err
			}

			repositories, err := gc.ListRepositories()
			if err != nil {
				return err
			}

			printRepositories(cmd, repositories)
			return nil
		},
	}

	return listCmd
}

func printRepositories(cmd *cobra.Command, repositories []status.Repository) {
	out := cmd.OutOrStdout()

	if len(repositories) == 0 {
		fmt.Fprintln(out, "No repositories registered")
		return
	}

	for i, repo := range repositories {
		indicator := ""
		if !repo.IsValid {
			indicator = "*"
		}
		fmt.Fprintf(out, "  %d. %s%s (%s)\n", i+1, indicator, repo.Name, repo.Path)
	}
}
