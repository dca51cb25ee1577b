// Package status provides the status command tree. Statuses live in the
// database, so listing them here always reflects what tasks can actually use.
package status

import (
	"github.com/spf13/cobra"
)

// StatusCmd returns the status command with all subcommands
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Inspect workflow statuses",
		Long: `Inspect the workflow statuses tasks can move through.

Statuses are stored in the database and seeded on first run with TODO,
IN_PROGRESS, BLOCKED and DONE. Board columns follow this order.`,
	}

	cmd.AddCommand(ListCmd())

	return cmd
}
