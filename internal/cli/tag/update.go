package tag

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/avelar/tarea/internal/cli"
	tagservice "github.com/avelar/tarea/internal/services/tag"
)

// UpdateCmd returns the tag update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rename or recolor a tag",
		Long: `Rename or recolor a tag, addressed by its current name.

Assignments follow the tag through a rename. Passing --color="" clears
the color.

Examples:
  # Rename
  tarea tag update --name=backend --rename=api

  # Recolor
  tarea tag update --name=urgent --color="#FFD700"

  # Drop the color
  tarea tag update --name=urgent --color=""
`,
		RunE: runUpdate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Current tag name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("rename", "", "New tag name")
	cmd.Flags().String("color", "", "New hex color (empty clears)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	tagName, _ := cmd.Flags().GetString("name")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	req := tagservice.UpdateTagRequest{Name: tagName}
	if cmd.Flags().Changed("rename") {
		newName, _ := cmd.Flags().GetString("rename")
		req.NewName = &newName
	}
	if cmd.Flags().Changed("color") {
		color, _ := cmd.Flags().GetString("color")
		req.Color = &color
	}

	if req.NewName == nil && req.Color == nil {
		err := fmt.Errorf("nothing to update")
		if fmtErr := formatter.ErrorWithSuggestion("NO_CHANGES",
			err.Error(),
			"Pass --rename and/or --color"); fmtErr != nil {
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

	tag, err := cliInstance.App.TagService.UpdateTag(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, tagservice.ErrTagNotFound):
			if fmtErr := formatter.ErrorWithSuggestion("TAG_NOT_FOUND",
				fmt.Sprintf("tag %q not found", tagName),
				"Run 'tarea tag list' to see existing tags"); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		case errors.Is(err, tagservice.ErrDuplicateTag):
			if fmtErr := formatter.Error("DUPLICATE_TAG", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		case errors.Is(err, tagservice.ErrInvalidColor):
			if fmtErr := formatter.ErrorWithSuggestion("INVALID_COLOR", err.Error(),
				"Colors are hex like #FF5733"); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
		default:
			if fmtErr := formatter.Error("TAG_UPDATE_ERROR", err.Error()); fmtErr != nil {
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

	fmt.Printf("✓ Tag updated: %s", tag.Name)
	if tag.Color != "" {
		fmt.Printf(" (%s)", tag.Color)
	}
	fmt.Println()
	return nil
}
