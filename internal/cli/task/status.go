package task

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/avelar/tarea/internal/cli"
	taskservice "github.com/avelar/tarea/internal/services/task"
)

// StatusCmd returns the task status subcommand, a shortcut for moving a
// task between lanes without touching anything else
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Change a task's status",
		Long: `Change a task's status without touching its other fields.

Examples:
  # Start working on a task
  tarea task status --id=3 --status=in_progress

  # Finish it
  tarea task status --id=3 --status=done --quiet
`,
		RunE: runStatus,
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("status", "", "Target status (required)")
	if err := cmd.MarkFlagRequired("status"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	taskID, _ := cmd.Flags().GetInt("id")
	rawStatus, _ := cmd.Flags().GetString("status")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	status := cli.NormalizeStatus(rawStatus)

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

	if err := cliInstance.App.TaskService.ChangeStatus(ctx, taskID, status); err != nil {
		switch {
		case errors.Is(err, taskservice.ErrTaskNotFound):
			if fmtErr := formatter.Error("TASK_NOT_FOUND",
				fmt.Sprintf("task %d not found", taskID)); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		case errors.Is(err, taskservice.ErrUnknownStatus):
			if fmtErr := formatter.ErrorWithSuggestion("UNKNOWN_STATUS", err.Error(),
				"Run 'tarea status list' to see valid statuses"); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		default:
			if fmtErr := formatter.Error("STATUS_CHANGE_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		}
		return cli.Exit(cli.CodeForError(err), err)
	}

	if quietMode {
		fmt.Printf("%d\n", taskID)
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"id":     taskID,
			"status": status,
		})
	}

	fmt.Printf("✓ Task %d moved to %s\n", taskID, status)
	return nil
}
