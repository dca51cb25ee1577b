package status

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/avelar/tarea/internal/cli"
)

// ListCmd returns the status list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workflow statuses in board order",
		Long: `List every status a task can carry, in the order boards display them.

Examples:
  # Human-readable list
  tarea status list

  # Names only, one per line
  tarea status list --quiet
`,
		RunE: runList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (names only)")

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

	statuses, err := cliInstance.App.StatusService.ListStatuses(ctx)
	if err != nil {
		if fmtErr := formatter.Error("STATUS_LIST_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return cli.Exit(cli.CodeForError(err), err)
	}

	// Output based on mode (JSON/Quiet/Human)
	if quietMode {
		for _, status := range statuses {
			fmt.Println(status.Name)
		}
		return nil
	}

	if jsonOutput {
		statusList := make([]map[string]interface{}, len(statuses))
		for i, status := range statuses {
			statusList[i] = map[string]interface{}{
				"name":     status.Name,
				"position": status.Position,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"statuses": statusList,
		})
	}

	// Human-readable output
	fmt.Printf("Found %d statuses:\n\n", len(statuses))
	for _, status := range statuses {
		fmt.Printf("  %d. %s\n", status.Position, status.Name)
	}

	return nil
}
