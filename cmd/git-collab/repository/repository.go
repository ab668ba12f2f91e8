// Package repository provides repository management commands for the git-collab CLI.
package repository

import (
	"github.com/spf13/cobra"
)

// CreateRepositoryCmd creates the repository command with all its subcommands.
func CreateRepositoryCmd() *cobra.Command {
	repositoryCmd := &cobra.Command{
		Use:     "repository",
		Aliases: []string{"r", "repo"},
		Short:   "Repository management commands",
		Long:    `Commands for managing the repositories in which git-collab installs its post-commit hook.`,
	}

	// Add repository subcommands
	repositoryCmd.AddCommand(
		createAddCmd(),
		createRemoveCmd(),
		createListCmd(),
	)

	return repositoryCmd
}
