package task

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/avelar/tarea/internal/cli"
	taskservice "github.com/avelar/tarea/internal/services/task"
)

// LinkCmd returns the task link subcommand
func LinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Link two tasks",
		Long: `Record that one task depends on another.

The --from task depends on the --to task: the --to task is the
prerequisite. Links that would close a cycle are rejected.

Examples:
  # Task 3 depends on task 7
  tarea task link --from=3 --to=7

  # JSON output for agents
  tarea task link --from=3 --to=7 --json
`,
		RunE: runLink,
	}

	cmd.Flags().Int("from", 0, "Dependent task ID (required)")
	if err := cmd.MarkFlagRequired("from"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Int("to", 0, "Prerequisite task ID (required)")
	if err := cmd.MarkFlagRequired("to"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runLink(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	fromID, _ := cmd.Flags().GetInt("from")
	toID, _ := cmd.Flags().GetInt("to")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Initialize CLI
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return cli.Exit(cli.ExitError, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	if err := cliInstance.App.TaskService.LinkTasks(ctx, fromID, toID); err != nil {
		switch {
		case errors.Is(err, taskservice.ErrSelfLink):
			if fmtErr := formatter.Error("SELF_LINK", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		case errors.Is(err, taskservice.ErrCircularLink):
			if fmtErr := formatter.ErrorWithSuggestion("CIRCULAR_LINK", err.Error(),
				"Run 'tarea view graph' to inspect the dependency chain"); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		case errors.Is(err, taskservice.ErrDuplicateLink):
			if fmtErr := formatter.Error("DUPLICATE_LINK", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		case errors.Is(err, taskservice.ErrTaskNotFound):
			if fmtErr := formatter.ErrorWithSuggestion("TASK_NOT_FOUND", err.Error(),
				"Run 'tarea task list' to see existing task IDs"); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		default:
			if fmtErr := formatter.Error("LINK_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		}
		return cli.Exit(cli.CodeForError(err), err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"from": fromID,
			"to":   toID,
		})
	}

	fmt.Printf("✓ Task %d now depends on task %d\n", fromID, toID)
	return nil
}
