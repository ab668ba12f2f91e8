// Package main provides the command-line interface for the git-collab application.
package main

import (
	"os"

	"github.com/lerenn/git-collab/cmd/git-collab/internal/cli"
	"github.com/lerenn/git-collab/cmd/git-collab/repository"
	"github.com/lerenn/git-collab/cmd/git-collab/users"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "git-collab",
		Short: "git-collab - co-authored commits for pair and mob programming",
		Long: `A CLI tool that installs a post-commit hook in your repositories to rotate ` +
			`the git author between collaborators and credit the others as co-authors.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	// Add subcommands
	rootCmd.AddCommand(
		createInitCmd(),
		repository.CreateRepositoryCmd(),
		users.CreateUsersCmd(),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		cli.NewLogger().Errorf("%v", err)
		os.Exit(1)
	}
}
