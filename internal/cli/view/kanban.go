package view

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avelar/tarea/internal/cli"
	"github.com/avelar/tarea/internal/config"
	"github.com/avelar/tarea/internal/models"
	"github.com/avelar/tarea/internal/render"
	taskservice "github.com/avelar/tarea/internal/services/task"
)

// KanbanCmd returns the view kanban subcommand
func KanbanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kanban",
		Short: "Render tasks as a status-grouped board",
		Long: `Render tasks as a kanban board, one column per status in board order.

Columns without tasks still appear with a placeholder. Filtering by
status keeps only the named columns; filtering by tag keeps every
column but only shows matching tasks.

Examples:
  # The whole board
  tarea view kanban

  # Only the in-flight lanes
  tarea view kanban --status=in_progress --status=blocked

  # Backend work across all lanes
  tarea view kanban --tag=backend
`,
		RunE: runKanban,
	}

	// Filter flags
	cmd.Flags().StringArray("status", nil, "Only show these status columns (repeatable)")
	cmd.Flags().StringArray("tag", nil, "Only show tasks carrying all of these tags (repeatable)")

	// Layout flags
	cmd.Flags().Int("width", 120, "Total board width in columns")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output board data in JSON format")

	return cmd
}

func runKanban(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	statusFilters, _ := cmd.Flags().GetStringArray("status")
	tagFilters, _ := cmd.Flags().GetStringArray("tag")
	width, _ := cmd.Flags().GetInt("width")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	formatter := &cli.OutputFormatter{JSON: jsonOutput}

	filters := viewFilters(statusFilters, tagFilters)

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
		} else {
			if fmtErr := formatter.Error("VIEW_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		}
		return cli.Exit(cli.CodeForError(err), err)
	}

	statuses, err := cliInstance.App.StatusService.ListStatuses(ctx)
	if err != nil {
		if fmtErr := formatter.Error("VIEW_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return cli.Exit(cli.CodeForError(err), err)
	}

	// A status filter narrows the board to the named columns, in board order
	columns := statuses
	if len(filters.Statuses) > 0 {
		wanted := make(map[string]bool, len(filters.Statuses))
		for _, name := range filters.Statuses {
			wanted[name] = true
		}
		columns = nil
		for _, status := range statuses {
			if wanted[status.Name] {
				columns = append(columns, status)
			}
		}
	}

	if jsonOutput {
		return outputKanbanJSON(columns, tasks)
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{ColorScheme: config.DefaultColorScheme()}
		cfg.ColorScheme.ApplyDefaults()
	}

	fmt.Print(render.Board(columns, tasks, cfg.ColorScheme, width))
	return nil
}

func outputKanbanJSON(columns []*models.Status, tasks []*models.Task) error {
	byStatus := make(map[string][]*models.Task)
	for _, task := range tasks {
		byStatus[task.Status] = append(byStatus[task.Status], task)
	}

	columnList := make([]map[string]interface{}, len(columns))
	for i, status := range columns {
		taskList := make([]map[string]interface{}, 0, len(byStatus[status.Name]))
		for _, task := range byStatus[status.Name] {
			tagNames := make([]string, len(task.Tags))
			for j, tag := range task.Tags {
				tagNames[j] = tag.Name
			}
			taskList = append(taskList, map[string]interface{}{
				"id":    task.ID,
				"title": task.Title,
				"tags":  tagNames,
			})
		}
		columnList[i] = map[string]interface{}{
			"status": status.Name,
			"tasks":  taskList,
		}
	}

	return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
		"success": true,
		"columns": columnList,
	})
}

// viewFilters builds task filters from the shared --status/--tag flags.
func viewFilters(statusFlags, tagFlags []string) models.TaskFilters {
	filters := models.TaskFilters{
		Statuses: cli.NormalizeStatuses(statusFlags),
	}
	for _, tag := range tagFlags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			filters.Tags = append(filters.Tags, trimmed)
		}
	}
	return filters
}
