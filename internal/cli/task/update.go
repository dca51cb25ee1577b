package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avelar/tarea/internal/cli"
	taskservice "github.com/avelar/tarea/internal/services/task"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a task",
		Long: `Update a task's title, description, status, or tags.

Only the flags you pass change; everything else keeps its value. Passing
--tag replaces the whole tag set (use --tag="" to clear it).

Examples:
  # Rename a task
  tarea task update --id=3 --title="New title"

  # Move it along and retag it
  tarea task update --id=3 --status=in_progress --tag=backend --tag=urgent

  # Clear all tags
  tarea task update --id=3 --tag=""

  # JSON output for agents
  tarea task update --id=3 --status=done --json
`,
		RunE: runUpdate,
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("status", "", "New status")
	cmd.Flags().StringArray("tag", nil, "Replacement tag set (repeatable)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	taskID, _ := cmd.Flags().GetInt("id")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	req := taskservice.UpdateTaskRequest{TaskID: taskID}
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		req.Title = &title
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		req.Description = &description
	}
	if cmd.Flags().Changed("status") {
		status, _ := cmd.Flags().GetString("status")
		normalized := cli.NormalizeStatus(status)
		req.Status = &normalized
	}
	if cmd.Flags().Changed("tag") {
		tags, _ := cmd.Flags().GetStringArray("tag")
		// Non-nil replaces the set; empty values are dropped downstream,
		// so --tag="" clears all tags.
		if tags == nil {
			tags = []string{}
		}
		req.Tags = tags
	}

	if req.Title == nil && req.Description == nil && req.Status == nil && req.Tags == nil {
		err := fmt.Errorf("nothing to update")
		if fmtErr := formatter.ErrorWithSuggestion("NO_CHANGES",
			err.Error(),
			"Pass at least one of --title, --description, --status, --tag"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return cli.Exit(cli.ExitUsage, err)
	}

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

	task, err := cliInstance.App.TaskService.UpdateTask(ctx, req)
	if err != nil {
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
			if fmtErr := formatter.Error("TASK_UPDATE_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		}
		return cli.Exit(cli.CodeForError(err), err)
	}

	// Output based on mode (JSON/Quiet/Human)
	if quietMode {
		fmt.Printf("%d\n", task.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"task": map[string]interface{}{
				"id":          task.ID,
				"title":       task.Title,
				"description": task.Description,
				"status":      task.Status,
				"tags":        tagsJSON(task.Tags),
				"updated_at":  task.UpdatedAt,
			},
		})
	}

	// Human-readable output
	fmt.Printf("✓ Task %d updated\n", task.ID)
	fmt.Printf("  Title: %s\n", task.Title)
	fmt.Printf("  Status: %s\n", task.Status)
	if len(task.Tags) > 0 {
		fmt.Printf("  Tags: %s\n", strings.Join(tagNames(task.Tags), ", "))
	}

	return nil
}
