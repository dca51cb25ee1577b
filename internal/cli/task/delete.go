package task

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avelar/tarea/internal/cli"
	taskservice "github.com/avelar/tarea/internal/services/task"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		Long: `Delete a task by ID (requires confirmation unless --yes or --quiet).

Deleting a task also removes its tag assignments and dependency links;
the tags themselves and the linked tasks stay.

Examples:
  # Interactive delete
  tarea task delete --id=3

  # Scripted delete
  tarea task delete --id=3 --yes
`,
		RunE: runDelete,
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Bool("yes", false, "Skip confirmation")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	taskID, _ := cmd.Flags().GetInt("id")
	skipConfirm, _ := cmd.Flags().GetBool("yes")
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

	// Fetch the task first so the confirmation can name it
	task, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		if errors.Is(err, taskservice.ErrTaskNotFound) {
			if fmtErr := formatter.Error("TASK_NOT_FOUND",
				fmt.Sprintf("task %d not found", taskID)); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		} else if fmtErr := formatter.Error("TASK_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return cli.Exit(cli.CodeForError(err), err)
	}

	// Ask for confirmation unless forced, quiet, or JSON mode
	if !skipConfirm && !quietMode && !jsonOutput {
		fmt.Printf("Delete task #%d: '%s'? (y/N): ", task.ID, task.Title)
		response, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && response == "" {
			fmt.Println("Cancelled")
			return nil
		}
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.TaskService.DeleteTask(ctx, taskID); err != nil {
		if fmtErr := formatter.Error("TASK_DELETE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return cli.Exit(cli.CodeForError(err), err)
	}

	if quietMode {
		fmt.Printf("%d\n", taskID)
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"id":      taskID,
			"deleted": true,
		})
	}

	fmt.Printf("✓ Task #%d deleted\n", taskID)
	return nil
}
