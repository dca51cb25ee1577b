package tag

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/avelar/tarea/internal/cli"
)

// ListCmd returns the tag list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Long:  "List all tags alphabetically.",
		RunE:  runList,
	}

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

	tags, err := cliInstance.App.TagService.ListTags(ctx)
	if err != nil {
		if fmtErr := formatter.Error("TAG_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return cli.Exit(cli.CodeForError(err), err)
	}

	// Output based on mode (JSON/Quiet/Human)
	if quietMode {
		for _, tag := range tags {
			fmt.Printf("%d\n", tag.ID)
		}
		return nil
	}

	if jsonOutput {
		tagList := make([]map[string]interface{}, len(tags))
		for i, tag := range tags {
			tagList[i] = map[string]interface{}{
				"id":    tag.ID,
				"name":  tag.Name,
				"color": tag.Color,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"tags":    tagList,
		})
	}

	// Human-readable output
	if len(tags) == 0 {
		fmt.Println("No tags found")
		return nil
	}

	fmt.Printf("Found %d tags:\n\n", len(tags))
	for _, tag := range tags {
		if tag.Color != "" {
			fmt.Printf("  [%d] %s (%s)\n", tag.ID, tag.Name, tag.Color)
		} else {
			fmt.Printf("  [%d] %s\n", tag.ID, tag.Name)
		}
	}

	return nil
}
