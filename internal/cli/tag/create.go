package tag

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/avelar/tarea/internal/cli"
	tagservice "github.com/avelar/tarea/internal/services/tag"
)

// CreateCmd returns the tag create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new tag",
		Long: `Create a tag with an optional display color.

Examples:
  # Plain tag
  tarea tag create --name=backend

  # With a color
  tarea tag create --name=urgent --color="#FF5F5F"

  # JSON output
  tarea tag create --name=backend --json
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Tag name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("color", "", "Hex color like #FF5733")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	tagName, _ := cmd.Flags().GetString("name")
	tagColor, _ := cmd.Flags().GetString("color")
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

	tag, err := cliInstance.App.TagService.CreateTag(ctx, tagservice.CreateTagRequest{
		Name:  tagName,
		Color: tagColor,
	})
	if err != nil {
		switch {
		case errors.Is(err, tagservice.ErrDuplicateTag):
			if fmtErr := formatter.ErrorWithSuggestion("DUPLICATE_TAG", err.Error(),
				"Run 'tarea tag list' to see existing tags"); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		case errors.Is(err, tagservice.ErrInvalidColor):
			if fmtErr := formatter.ErrorWithSuggestion("INVALID_COLOR", err.Error(),
				"Colors are hex like #FF5733"); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		default:
			if fmtErr := formatter.Error("TAG_CREATE_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		}
		return cli.Exit(cli.CodeForError(err), err)
	}

	// Output based on mode (JSON/Quiet/Human)
	if quietMode {
		fmt.Printf("%d\n", tag.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"id":    tag.ID,
			"name":  tag.Name,
			"color": tag.Color,
		})
	}

	if tag.Color != "" {
		fmt.Printf("✓ Tag '%s' created with color %s (ID: %d)\n", tag.Name, tag.Color, tag.ID)
	} else {
		fmt.Printf("✓ Tag '%s' created (ID: %d)\n", tag.Name, tag.ID)
	}
	return nil
}
