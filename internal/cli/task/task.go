// Package task implements the task subcommands: add, update, status, show,
// delete, list, link, and unlink.
package task

import (
	"github.com/spf13/cobra"

	"github.com/avelar/tarea/internal/models"
)

// TaskCmd returns the parent task command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
		Long:  "Create, update, inspect, list, link, and delete tasks.",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(StatusCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(LinkCmd())
	cmd.AddCommand(UnlinkCmd())

	return cmd
}

// tagNames flattens a tag list to its names for compact output
func tagNames(tags []*models.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}

// tagsJSON shapes tags for JSON output
func tagsJSON(tags []*models.Tag) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(tags))
	for _, tag := range tags {
		out = append(out, map[string]interface{}{
			"id":    tag.ID,
			"name":  tag.Name,
			"color": tag.Color,
		})
	}
	return out
}
