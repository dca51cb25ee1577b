package tag

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avelar/tarea/internal/cli"
	tagservice "github.com/avelar/tarea/internal/services/tag"
)

// DeleteCmd returns the tag delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a tag",
		Long: `Delete a tag by name. The tag is removed from every task it was
assigned to; the tasks themselves are untouched.

Examples:
  # Delete with confirmation prompt
  tarea tag delete --name=obsolete

  # Skip the prompt
  tarea tag delete --name=obsolete --yes
`,
		RunE: runDelete,
	}

	// Required flags
	cmd.Flags().String("name", "", "Tag name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().Bool("yes", false, "Skip confirmation prompt")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	tagName, _ := cmd.Flags().GetString("name")
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

	// Confirmation prompt only makes sense in interactive human mode
	if !skipConfirm && !quietMode && !jsonOutput {
		fmt.Printf("Delete tag '%s'? (y/N): ", tagName)
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.TagService.DeleteTag(ctx, tagName); err != nil {
		switch {
		case errors.Is(err, tagservice.ErrTagNotFound):
			if fmtErr := formatter.ErrorWithSuggestion("TAG_NOT_FOUND",
				fmt.Sprintf("tag %q not found", tagName),
				"Run 'tarea tag list' to see existing tags"); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		default:
			if fmtErr := formatter.Error("TAG_DELETE_ERROR", err.Error()); fmtErr != nil {
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
			"deleted": tagName,
		})
	}

	fmt.Printf("✓ Tag '%s' deleted\n", tagName)
	return nil
}
