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
	"github.com/avelar/tarea/internal/models"
	taskservice "github.com/avelar/tarea/internal/services/task"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks, optionally filtered by status, tags, and date ranges.

Filters combine with AND; repeating --tag requires every named tag.
Dates accept YYYY-MM-DD or full RFC 3339 timestamps.

Examples:
  # Everything, newest first
  tarea task list

  # Open work carrying both tags
  tarea task list --status=todo --status=in_progress --tag=backend --tag=urgent

  # What changed this week
  tarea task list --updated-after=2026-08-18

  # IDs only, for scripting
  tarea task list --status=blocked --quiet
`,
		RunE: runList,
	}

	cmd.Flags().StringArray("status", nil, "Status filter (repeatable)")
	cmd.Flags().StringArray("tag", nil, "Tag filter (repeatable; task must carry all)")
	cmd.Flags().String("created-after", "", "Only tasks created on or after this date")
	cmd.Flags().String("created-before", "", "Only tasks created on or before this date")
	cmd.Flags().String("updated-after", "", "Only tasks updated on or after this date")
	cmd.Flags().String("updated-before", "", "Only tasks updated on or before this date")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	filters, err := filtersFromFlags(cmd)
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_FILTER",
			err.Error(),
			"Dates accept YYYY-MM-DD or RFC 3339 timestamps"); fmtErr != nil {
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

	tasks, err := cliInstance.App.TaskService.ListTasks(ctx, filters)
	if err != nil {
		if errors.Is(err, taskservice.ErrUnknownStatus) {
			if fmtErr := formatter.ErrorWithSuggestion("UNKNOWN_STATUS", err.Error(),
				"Run 'tarea status list' to see valid statuses"); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		} else if fmtErr := formatter.Error("TASK_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return cli.Exit(cli.CodeForError(err), err)
	}

	// Output based on mode (JSON/Quiet/Human)
	if quietMode {
		for _, t := range tasks {
			fmt.Printf("%d\n", t.ID)
		}
		return nil
	}

	if jsonOutput {
		taskList := make([]map[string]interface{}, 0, len(tasks))
		for _, t := range tasks {
			taskList = append(taskList, map[string]interface{}{
				"id":         t.ID,
				"title":      t.Title,
				"status":     t.Status,
				"tags":       tagsJSON(t.Tags),
				"created_at": t.CreatedAt,
				"updated_at": t.UpdatedAt,
			})
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"tasks":   taskList,
		})
	}

	// Human-readable output
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Printf("Found %d tasks:\n\n", len(tasks))
	for _, t := range tasks {
		line := fmt.Sprintf("  [%d] %s (%s)", t.ID, t.Title, t.Status)
		if len(t.Tags) > 0 {
			line += " " + strings.Join(tagNames(t.Tags), ", ")
		}
		fmt.Println(line)
	}

	return nil
}

func filtersFromFlags(cmd *cobra.Command) (models.TaskFilters, error) {
	var filters models.TaskFilters

	statuses, _ := cmd.Flags().GetStringArray("status")
	filters.Statuses = cli.NormalizeStatuses(statuses)

	tags, _ := cmd.Flags().GetStringArray("tag")
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			filters.Tags = append(filters.Tags, trimmed)
		}
	}

	if raw, _ := cmd.Flags().GetString("created-after"); raw != "" {
		t, err := cli.ParseDate(raw)
		if err != nil {
			return filters, err
		}
		filters.CreatedAfter = &t
	}
	if raw, _ := cmd.Flags().GetString("created-before"); raw != "" {
		t, err := cli.ParseDateEnd(raw)
		if err != nil {
			return filters, err
		}
		filters.CreatedBefore = &t
	}
	if raw, _ := cmd.Flags().GetString("updated-after"); raw != "" {
		t, err := cli.ParseDate(raw)
		if err != nil {
			return filters, err
		}
		filters.UpdatedAfter = &t
	}
	if raw, _ := cmd.Flags().GetString("updated-before"); raw != "" {
		t, err := cli.ParseDateEnd(raw)
		if err != nil {
			return filters, err
		}
		filters.UpdatedBefore = &t
	}

	return filters, nil
}
