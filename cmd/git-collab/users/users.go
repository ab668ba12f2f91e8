// Package users provides user management commands for the git-collab CLI.
package users

import (
	"github.com/spf13/cobra"
)

// CreateUsersCmd creates the users command with all its subcommands.
func CreateUsersCmd() *cobra.Command {
	usersCmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"u"},
		Short:   "User management commands",
		Long:    `Commands for managing the collaborators credited on commits.`,
	}

	usersCmd.AddCommand(createRotateCmd())

	return usersCmd
}
