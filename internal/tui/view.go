package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/avelar/tarea/internal/models"
)

const (
	minColumnWidth = 18
	maxColumnWidth = 36
	detailWidth    = 80
)

// View renders the board, or the detail overlay while one is open
func (m Model) View() string {
	if m.err != nil {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.cfg.ColorScheme.Error)).
			Bold(true)
		return errStyle.Render("Error: "+m.err.Error()) + "\n\nPress q to quit.\n"
	}
	if !m.loaded {
		return "Loading board...\n"
	}
	if m.detail != nil {
		return m.detailView()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.boardView(),
		m.help.View(m.keys),
	)
}

func (m Model) boardView() string {
	scheme := m.cfg.ColorScheme

	if len(m.statuses) == 0 {
		return "No statuses defined\n"
	}

	width := m.width
	if width <= 0 {
		width = 100
	}
	contentWidth := width/len(m.statuses) - 4
	if contentWidth < minColumnWidth {
		contentWidth = minColumnWidth
	}
	if contentWidth > maxColumnWidth {
		contentWidth = maxColumnWidth
	}

	placeholderStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle)).
		Italic(true)

	columns := make([]string, 0, len(m.statuses))
	for i, st := range m.statuses {
		columnTasks := m.byStatus[st.Name]

		borderColor := scheme.ColumnBorder
		if i == m.col {
			borderColor = scheme.SelectedBorder
		}
		columnStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(borderColor)).
			Padding(0, 1).
			Width(contentWidth + 2)

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
			for j, task := range columnTasks {
				if j > 0 {
					body.WriteString("\n")
				}
				body.WriteString(m.renderCard(task, contentWidth, i == m.col && j == m.row))
			}
		}

		columns = append(columns, columnStyle.Render(body.String()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (m Model) renderCard(task *models.Task, width int, selected bool) string {
	scheme := m.cfg.ColorScheme

	line := truncate(fmt.Sprintf("#%d %s", task.ID, task.Title), width)

	cardStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Normal))
	if selected {
		cardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Accent)).
			Background(lipgloss.Color(scheme.SelectedBg)).
			Bold(true)
	}
	out := cardStyle.Render(line)

	if len(task.Tags) == 0 {
		return out
	}

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

	return out + "\n" + strings.Join(chips, " ")
}

func (m Model) detailView() string {
	scheme := m.cfg.ColorScheme
	detail := m.detail

	width := detailWidth
	if m.width > 0 && m.width-4 < width {
		width = m.width - 4
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))
	labelStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))
	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.StatusColor(detail.Status)))
	subtleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	var content strings.Builder
	content.WriteString(titleStyle.Render(fmt.Sprintf("#%d %s", detail.ID, detail.Title)))
	content.WriteString("\n\n")
	content.WriteString(labelStyle.Render("Status: "))
	content.WriteString(statusStyle.Render(detail.Status))
	content.WriteString("\n")
	content.WriteString(labelStyle.Render("Created: "))
	content.WriteString(detail.CreatedAt.Format("2006-01-02 15:04"))
	content.WriteString("\n")
	content.WriteString(labelStyle.Render("Updated: "))
	content.WriteString(detail.UpdatedAt.Format("2006-01-02 15:04"))
	content.WriteString("\n")

	if detail.Description != "" {
		content.WriteString("\n")
		content.WriteString(renderMarkdown(detail.Description, width-4))
		content.WriteString("\n")
	}

	if len(detail.Tags) > 0 {
		content.WriteString("\n")
		content.WriteString(labelStyle.Render("Tags: "))
		chips := make([]string, 0, len(detail.Tags))
		for _, tag := range detail.Tags {
			color := tag.Color
			if color == "" {
				color = scheme.Tag
			}
			chips = append(chips, lipgloss.NewStyle().
				Foreground(lipgloss.Color(color)).
				Render("["+tag.Name+"]"))
		}
		content.WriteString(strings.Join(chips, " "))
		content.WriteString("\n")
	}

	writeReferences := func(label string, refs []*models.TaskReference) {
		if len(refs) == 0 {
			return
		}
		content.WriteString("\n")
		content.WriteString(labelStyle.Render(label))
		content.WriteString("\n")
		for _, ref := range refs {
			refStatus := lipgloss.NewStyle().
				Foreground(lipgloss.Color(scheme.StatusColor(ref.Status)))
			content.WriteString(fmt.Sprintf("  • #%d %s %s\n",
				ref.ID, ref.Title, refStatus.Render("["+ref.Status+"]")))
		}
	}
	writeReferences("Depends on", detail.DependsOn)
	writeReferences("Required by", detail.RequiredBy)

	content.WriteString("\n")
	content.WriteString(subtleStyle.Render("esc to close"))

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.SelectedBorder)).
		Padding(1, 2).
		Width(width)

	return cardStyle.Render(content.String()) + "\n"
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
