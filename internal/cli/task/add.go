package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avelar/tarea/internal/cli"
	taskservice "github.com/avelar/tarea/internal/services/task"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new task",
		Long: `Add a new task with an optional status and tags.

Missing tags are created on the fly; the status defaults to TODO.

Examples:
  # Simple task (human-readable output)
  tarea task add --title="Fix login bug"

  # With status and tags
  tarea task add --title="Write docs" --status=in_progress --tag=docs --tag=backend

  # Description from stdin
  cat notes.md | tarea task add --title="Investigate crash" --description=-

  # Quiet mode for bash capture
  TASK_ID=$(tarea task add --title="Fix login bug" --quiet)

  # JSON output for agents
  tarea task add --title="Fix login bug" --json
`,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	cmd.Flags().String("status", "", "Initial status (defaults to TODO)")
	cmd.Flags().StringArray("tag", nil, "Tag to attach (repeatable; created if missing)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	taskTitle, _ := cmd.Flags().GetString("title")
	taskDescription, _ := cmd.Flags().GetString("description")
	taskStatus, _ := cmd.Flags().GetString("status")
	taskTags, _ := cmd.Flags().GetStringArray("tag")
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

	// Handle description from stdin
	description := taskDescription
	if description == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			if fmtErr := formatter.Error("STDIN_READ_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			return cli.Exit(cli.ExitError, err)
		}
		description = string(data)
	}

	req := taskservice.CreateTaskRequest{
		Title:       taskTitle,
		Description: description,
		Status:      cli.NormalizeStatus(taskStatus),
		Tags:        taskTags,
	}

	task, err := cliInstance.App.TaskService.CreateTask(ctx, req)
	if err != nil {
		if errors.Is(err, taskservice.ErrUnknownStatus) {
			if fmtErr := formatter.ErrorWithSuggestion("UNKNOWN_STATUS", err.Error(),
				"Run 'tarea status list' to see valid statuses"); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		} else if fmtErr := formatter.Error("TASK_CREATE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
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
				"created_at":  task.CreatedAt,
			},
		})
	}

	// Human-readable output
	fmt.Printf("✓ Task '%s' created successfully (ID: %d)\n", task.Title, task.ID)
	fmt.Printf("  Status: %s\n", task.Status)
	if len(task.Tags) > 0 {
		fmt.Printf("  Tags: %s\n", strings.Join(tagNames(task.Tags), ", "))
	}

	return nil
}
