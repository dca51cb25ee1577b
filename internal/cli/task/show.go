package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/avelar/tarea/internal/cli"
	"github.com/avelar/tarea/internal/cli/styles"
	"github.com/avelar/tarea/internal/config"
	"github.com/avelar/tarea/internal/models"
	taskservice "github.com/avelar/tarea/internal/services/task"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show task details",
		Long:  "Display all details of a task including description, tags, dependencies, and timestamps.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Parse task ID from positional arg or flag
	var taskID int
	if len(args) > 0 {
		parsed, err := cli.ParseTaskID(args[0])
		if err != nil {
			if fmtErr := formatter.ErrorWithSuggestion("INVALID_TASK_ID",
				err.Error(),
				"Usage: tarea task show <id> or tarea task show --id=<id>"); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			return cli.Exit(cli.ExitUsage, err)
		}
		taskID = parsed
	} else {
		taskID, _ = cmd.Flags().GetInt("id")
	}

	if taskID <= 0 {
		err := fmt.Errorf("task ID must be a positive integer")
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_TASK_ID",
			err.Error(),
			"Usage: tarea task show <id> or tarea task show --id=<id>"); fmtErr != nil {
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

	task, err := cliInstance.App.TaskService.GetTaskDetail(ctx, taskID)
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

	// Output based on mode (JSON/Quiet/Human)
	if quietMode {
		fmt.Printf("%d\n", task.ID)
		return nil
	}

	if jsonOutput {
		return outputJSON(task)
	}

	// Load config for the color scheme, falling back to defaults
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{ColorScheme: config.DefaultColorScheme()}
		cfg.ColorScheme.ApplyDefaults()
	}
	styles.Init(cfg.ColorScheme)

	fmt.Println(outputHuman(task))
	return nil
}

func outputJSON(task *models.TaskDetail) error {
	references := func(refs []*models.TaskReference) []map[string]interface{} {
		out := make([]map[string]interface{}, 0, len(refs))
		for _, ref := range refs {
			out = append(out, map[string]interface{}{
				"id":     ref.ID,
				"title":  ref.Title,
				"status": ref.Status,
			})
		}
		return out
	}

	return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
		"success": true,
		"task": map[string]interface{}{
			"id":          task.ID,
			"title":       task.Title,
			"description": task.Description,
			"status":      task.Status,
			"tags":        tagsJSON(task.Tags),
			"depends_on":  references(task.DependsOn),
			"required_by": references(task.RequiredBy),
			"created_at":  task.CreatedAt,
			"updated_at":  task.UpdatedAt,
		},
	})
}

func outputHuman(task *models.TaskDetail) string {
	var content strings.Builder

	// Header
	header := styles.TitleStyle.Render(fmt.Sprintf("#%d: %s", task.ID, task.Title))
	content.WriteString(header)
	content.WriteString("\n\n")

	// Status
	content.WriteString(fmt.Sprintf("%s %s\n",
		styles.LabelStyle.Render("Status:"),
		styles.RenderStatus(task.Status)))

	// Timestamps
	if !task.CreatedAt.IsZero() {
		content.WriteString(fmt.Sprintf("%s %s\n",
			styles.LabelStyle.Render("Created:"),
			styles.SubtitleStyle.Render(task.CreatedAt.Format("Jan 2, 2006 3:04 PM"))))
	}
	if !task.UpdatedAt.IsZero() {
		content.WriteString(fmt.Sprintf("%s %s\n",
			styles.LabelStyle.Render("Updated:"),
			styles.SubtitleStyle.Render(task.UpdatedAt.Format("Jan 2, 2006 3:04 PM"))))
	}

	// Description, markdown-rendered
	if task.Description != "" {
		content.WriteString("\n")
		content.WriteString(styles.SectionStyle.Render("Description"))
		content.WriteString("\n")
		content.WriteString(renderMarkdown(task.Description, styles.CardWidth-8))
		content.WriteString("\n")
	}

	// Tags
	if len(task.Tags) > 0 {
		content.WriteString("\n")
		content.WriteString(styles.SectionStyle.Render("Tags"))
		content.WriteString("\n")
		chips := make([]string, 0, len(task.Tags))
		for _, tag := range task.Tags {
			chips = append(chips, styles.RenderTagChip(tag))
		}
		content.WriteString(strings.Join(chips, " "))
		content.WriteString("\n")
	}

	// Dependencies, both directions
	if len(task.DependsOn) > 0 {
		content.WriteString("\n")
		content.WriteString(styles.SectionStyle.Render("Depends on"))
		content.WriteString("\n")
		for _, ref := range task.DependsOn {
			content.WriteString(styles.RenderTaskReference(ref))
			content.WriteString("\n")
		}
	}
	if len(task.RequiredBy) > 0 {
		content.WriteString("\n")
		content.WriteString(styles.SectionStyle.Render("Required by"))
		content.WriteString("\n")
		for _, ref := range task.RequiredBy {
			content.WriteString(styles.RenderTaskReference(ref))
			content.WriteString("\n")
		}
	}

	return styles.RenderCard(strings.TrimRight(content.String(), "\n"))
}

// renderMarkdown renders a description through glamour, falling back to
// the raw text when rendering fails
func renderMarkdown(description string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return description
	}
	rendered, err := renderer.Render(description)
	if err != nil {
		return description
	}
	return strings.TrimRight(rendered, "\n")
}
