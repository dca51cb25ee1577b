package tag

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/avelar/tarea/internal/cli"
	tagservice "github.com/avelar/tarea/internal/services/tag"
)

// RemoveCmd returns the tag remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a tag from a task",
		Long: `Remove a tag from a task. Only the assignment goes away; the tag
itself stays and can be assigned to other tasks.

Examples:
  tarea tag remove --task=12 --tag=backend
`,
		RunE: runRemove,
	}

	// Required flags
	cmd.Flags().Int("task", 0, "Task ID (required)")
	cmd.Flags().String("tag", "", "Tag name (required)")
	if err := cmd.MarkFlagRequired("task"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	if err := cmd.MarkFlagRequired("tag"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	taskID, _ := cmd.Flags().GetInt("task")
	tagName, _ := cmd.Flags().GetString("tag")
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

	if err := cliInstance.App.TagService.RemoveTag(ctx, taskID, tagName); err != nil {
		switch {
		case errors.Is(err, tagservice.ErrTagNotFound):
			if fmtErr := formatter.ErrorWithSuggestion("TAG_NOT_FOUND",
				fmt.Sprintf("tag %q not found", tagName),
				"Run 'tarea tag list' to see existing tags"); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		case errors.Is(err, tagservice.ErrTaskNotFound):
			if fmtErr := formatter.ErrorWithSuggestion("TASK_NOT_FOUND",
				fmt.Sprintf("task %d not found", taskID),
				"Run 'tarea task list' to see existing tasks"); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		default:
			if fmtErr := formatter.Error("TAG_REMOVE_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		}
		return cli.Exit(cli.CodeForError(err), err)
	}

	// Output based on mode (JSON/Quiet/Human)
	if quietMode {
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"task_id": taskID,
			"tag":     tagName,
		})
	}

	fmt.Printf("✓ Tag '%s' removed from task %d\n", tagName, taskID)
	return nil
}
