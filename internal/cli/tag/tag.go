// Package tag implements the tag subcommands: create, list, update, delete,
// assign, and remove. Tags are addressed by name everywhere.
package tag

import (
	"github.com/spf13/cobra"
)

// TagCmd returns the parent tag command
func TagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags",
		Long:  "Create, list, recolor, rename, delete, and assign tags.",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(AssignCmd())
	cmd.AddCommand(RemoveCmd())

	return cmd
}
