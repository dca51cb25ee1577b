// Package render builds the text layouts for the kanban and graph views.
// Renderers are pure: data in, string out, no database access.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avelar/tarea/internal/config/colors"
	"github.com/avelar/tarea/internal/models"
)

const (
	minColumnWidth = 18
	maxColumnWidth = 36
	defaultWidth   = 100
)

// Board renders tasks grouped into one bordered column per status, in
// status-definition order. Columns for statuses without tasks still render
// with a placeholder. Tasks keep the order they arrive in (the service
// lists newest-updated first).
func Board(statuses []*models.Status, tasks []*models.Task, scheme colors.ColorScheme, width int) string {
	if len(statuses) == 0 {
		return "No statuses defined\n"
	}
	if width <= 0 {
		width = defaultWidth
	}

	byStatus := make(map[string][]*models.Task, len(statuses))
	for _, t := range tasks {
		byStatus[t.Status] = append(byStatus[t.Status], t)
	}

	contentWidth := width/len(statuses) - 4 // border + padding
	if contentWidth < minColumnWidth {
		contentWidth = minColumnWidth
	}
	if contentWidth > maxColumnWidth {
		contentWidth = maxColumnWidth
	}

	columnStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.ColumnBorder)).
		Padding(0, 1).
		Width(contentWidth + 2)

	placeholderStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle)).
		Italic(true)

	rendered := make([]string, 0, len(statuses))
	for _, st := range statuses {
		columnTasks := byStatus[st.Name]

		headerStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.StatusColor(st.Name)))

		var body strings.Builder
		body.WriteString(headerStyle.Render(truncate(fmt.Sprintf("%s (%d)", st.Name, len(columnTasks)), contentWidth)))
		body.WriteString("\n")
		body.WriteString(strings.Repeat("─", contentWidth))
		body.WriteString("\n")

		if len(columnTasks) == 0 {
			body.WriteString(placeholderStyle.Render("No tasks"))
		} else {
			for i, task := range columnTasks {
				if i > 0 {
					body.WriteString("\n")
				}
				body.WriteString(renderCard(task, scheme, contentWidth))
			}
		}

		rendered = append(rendered, columnStyle.Render(body.String()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...) + "\n"
}

func renderCard(task *models.Task, scheme colors.ColorScheme, width int) string {
	idStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	line := fmt.Sprintf("%s %s",
		idStyle.Render(fmt.Sprintf("#%d", task.ID)),
		truncate(task.Title, width-len(fmt.Sprintf("#%d ", task.ID))))

	if len(task.Tags) == 0 {
		return line
	}

	// Chips are truncated before styling; the column width wraps the rest.
	chips := make([]string, 0, len(task.Tags))
	for _, tag := range task.Tags {
		color := tag.Color
		if color == "" {
			color = scheme.Tag
		}
		chips = append(chips, lipgloss.NewStyle().
			Foreground(lipgloss.Color(color)).
			Render(truncate("["+tag.Name+"]", width)))
	}

	return line + "\n" + strings.Join(chips, " ")
}

// truncate shortens s to at most width runes, appending "…" when cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
