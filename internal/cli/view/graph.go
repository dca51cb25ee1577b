package view

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/avelar/tarea/internal/cli"
	"github.com/avelar/tarea/internal/config"
	"github.com/avelar/tarea/internal/models"
	"github.com/avelar/tarea/internal/render"
	taskservice "github.com/avelar/tarea/internal/services/task"
)

// GraphCmd returns the view graph subcommand
func GraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Render the dependency graph in layers",
		Long: `Render the dependency graph. Tasks with no prerequisites sit in the
top layer; each arrow points at a task that depends on the one above it.

Filters hide tasks, and any edge touching a hidden task is dropped with
it, so the graph never points at something you can't see.

Examples:
  # Everything
  tarea view graph

  # Just the TODO slice of the graph
  tarea view graph --status=todo
`,
		RunE: runGraph,
	}

	// Filter flags
	cmd.Flags().StringArray("status", nil, "Only show tasks in these statuses (repeatable)")
	cmd.Flags().StringArray("tag", nil, "Only show tasks carrying all of these tags (repeatable)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output graph data in JSON format")

	return cmd
}

func runGraph(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	statusFilters, _ := cmd.Flags().GetStringArray("status")
	tagFilters, _ := cmd.Flags().GetStringArray("tag")
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

	links, err := cliInstance.App.TaskService.ListLinks(ctx)
	if err != nil {
		if fmtErr := formatter.Error("VIEW_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return cli.Exit(cli.CodeForError(err), err)
	}

	if jsonOutput {
		return outputGraphJSON(tasks, links)
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{ColorScheme: config.DefaultColorScheme()}
		cfg.ColorScheme.ApplyDefaults()
	}

	fmt.Print(render.Graph(tasks, links, cfg.ColorScheme))
	return nil
}

func outputGraphJSON(tasks []*models.Task, links []*models.TaskLink) error {
	visible := make(map[int]bool, len(tasks))
	taskList := make([]map[string]interface{}, len(tasks))
	for i, task := range tasks {
		visible[task.ID] = true
		taskList[i] = map[string]interface{}{
			"id":     task.ID,
			"title":  task.Title,
			"status": task.Status,
		}
	}

	// Edges touching a hidden task are dropped, matching the rendered view
	edgeList := make([]map[string]interface{}, 0, len(links))
	for _, link := range links {
		if !visible[link.FromTaskID] || !visible[link.ToTaskID] {
			continue
		}
		edgeList = append(edgeList, map[string]interface{}{
			"from": link.FromTaskID,
			"to":   link.ToTaskID,
		})
	}

	return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
		"success": true,
		"tasks":   taskList,
		"edges":   edgeList,
	})
}
