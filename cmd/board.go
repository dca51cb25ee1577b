package cmd

import (
	"github.com/spf13/cobra"

	"github.com/avelar/tarea/internal/cli"
	"github.com/avelar/tarea/internal/launcher"
)

// BoardCmd returns the interactive board command
func BoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive kanban board",
		Long: `Open the interactive kanban board.

The board is read-only: browse columns, inspect tasks and their
dependencies, and press space or enter on a task for its full card.
Mutations go through the task and tag commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flagPath := ""
			if v := cmd.Context().Value(cli.DBPathContextKey); v != nil {
				flagPath, _ = v.(string)
			}
			return launcher.Launch(cli.ResolveDBPath(flagPath))
		},
	}
}
