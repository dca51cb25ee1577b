// Package cmd assembles the tarea command tree.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/avelar/tarea/internal/cli"
	statuscmd "github.com/avelar/tarea/internal/cli/status"
	tagcmd "github.com/avelar/tarea/internal/cli/tag"
	taskcmd "github.com/avelar/tarea/internal/cli/task"
	viewcmd "github.com/avelar/tarea/internal/cli/view"
	"github.com/avelar/tarea/internal/launcher"
)

// RootCmd builds the root command with every subcommand registered
func RootCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "tarea",
		Short: "Tarea - track tasks, tags and dependencies from the terminal",
		Long: `Tarea is a personal task tracker backed by a single SQLite file.

Tasks move through data-driven statuses, carry tags, and can depend on
each other; dependency links are kept acyclic. Every command supports
--json and --quiet for scripting.

The database location is resolved from --db, then the TAREA_DB
environment variable, then the config file, then ~/.tarea/tarea.db.

Run with no arguments to open the interactive board.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			flagPath := ""
			if v := c.Context().Value(cli.DBPathContextKey); v != nil {
				flagPath, _ = v.(string)
			}
			return launcher.Launch(cli.ResolveDBPath(flagPath))
		},
	}

	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the database file")

	// Commands read the resolved path from the context, the same way tests
	// inject their own database.
	cmd.PersistentPreRun = func(c *cobra.Command, args []string) {
		if dbPath != "" {
			c.SetContext(context.WithValue(c.Context(), cli.DBPathContextKey, dbPath))
		}
	}

	cmd.AddCommand(taskcmd.TaskCmd())
	cmd.AddCommand(tagcmd.TagCmd())
	cmd.AddCommand(statuscmd.StatusCmd())
	cmd.AddCommand(viewcmd.ViewCmd())
	cmd.AddCommand(BoardCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return RootCmd().Execute()
}
