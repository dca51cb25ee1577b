// Package view provides read-only projections of the task graph: a
// status-grouped kanban board and a layered dependency graph. Views never
// mutate anything; they share the task list filters.
package view

import (
	"github.com/spf13/cobra"
)

// ViewCmd returns the view command with all subcommands
func ViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Render read-only views of your tasks",
		Long: `Render read-only views of your tasks.

Views accept the same --status and --tag filters as 'task list'.

Examples:
  # Full kanban board
  tarea view kanban

  # Dependency graph of backend work
  tarea view graph --tag=backend
`,
	}

	cmd.AddCommand(KanbanCmd())
	cmd.AddCommand(GraphCmd())

	return cmd
}
