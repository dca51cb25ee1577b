package task

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/avelar/tarea/internal/cli"
	taskservice "github.com/avelar/tarea/internal/services/task"
)

// UnlinkCmd returns the task unlink subcommand
func UnlinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlink",
		Short: "Remove a link between two tasks",
		Long: `Remove a dependency link. Direction matters: --from and --to must
match the link as it was created.

Examples:
  # Task 3 no longer depends on task 7
  tarea task unlink --from=3 --to=7
`,
		RunE: runUnlink,
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

func runUnlink(cmd *cobra.Command, args []string) error {
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

	if err := cliInstance.App.TaskService.UnlinkTasks(ctx, fromID, toID); err != nil {
		if errors.Is(err, taskservice.ErrLinkNotFound) {
			if fmtErr := formatter.ErrorWithSuggestion("LINK_NOT_FOUND",
				fmt.Sprintf("no link from task %d to task %d", fromID, toID),
				"Run 'tarea task show --id="+fmt.Sprint(fromID)+"' to see its links"); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		} else if fmtErr := formatter.Error("UNLINK_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return cli.Exit(cli.CodeForError(err), err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"from":    fromID,
			"to":      toID,
			"removed": true,
		})
	}

	fmt.Printf("✓ Task %d no longer depends on task %d\n", fromID, toID)
	return nil
}
