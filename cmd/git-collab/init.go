package main

import (
	"github.com/lerenn/git-collab/cmd/git-collab/internal/cli"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize git-collab",
		Long: `Initialize git-collab: write the default configuration when missing, install the
post-commit payload and the git log script, re-install the hook in every registered
repository and apply the current author and co-authors to the global git configuration.

Run it again after an upgrade to refresh the installed hooks.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := cli.EnsureConfig(); err != nil {
				return err
			}

			gc, err := cli.GitCollabFactory()
			if err != nil {
				return err
			}

			return gc.Init()
		},
	}

	return initCmd
}
