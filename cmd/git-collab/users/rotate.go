package users

import (
	"github.com/lerenn/git-collab/cmd/git-collab/internal/cli"
	"github.com/spf13/cobra"
)

func createRotateCmd() *cobra.Command {
	rotateCmd := &cobra.Command{
		Use:   "rotate",
		Short: "Hand the keyboard to the next active user",
		Long: `Make the next active user the git author and credit the other active users
as co-authors. The post-commit hook runs this command after every commit.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			gc, err := cli.GitCollabFactory()
			if err != nil {
				return err
			}

			return gc.RotateUsers()
		},
	}

	return rotateCmd
}
