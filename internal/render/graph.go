package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avelar/tarea/internal/config/colors"
	"github.com/avelar/tarea/internal/graph"
	"github.com/avelar/tarea/internal/models"
)

// Graph renders tasks as topological layers of the dependency graph.
// Layer 0 holds tasks with no prerequisites among the visible tasks;
// every link points from an earlier layer to a later one. Links with an
// endpoint outside the visible set are dropped, never drawn dangling.
func Graph(tasks []*models.Task, links []*models.TaskLink, scheme colors.ColorScheme) string {
	if len(tasks) == 0 {
		return "No tasks to graph\n"
	}

	visible := make(map[int]*models.Task, len(tasks))
	nodes := make([]int, 0, len(tasks))
	for _, t := range tasks {
		visible[t.ID] = t
		nodes = append(nodes, t.ID)
	}

	// A link records "from depends on to", so the prerequisite is the
	// link's target. Layering wants prerequisite→dependent edges.
	var edges []graph.Edge
	dependents := make(map[int][]int)
	for _, l := range links {
		if _, ok := visible[l.FromTaskID]; !ok {
			continue
		}
		if _, ok := visible[l.ToTaskID]; !ok {
			continue
		}
		edges = append(edges, graph.Edge{From: l.ToTaskID, To: l.FromTaskID})
		dependents[l.ToTaskID] = append(dependents[l.ToTaskID], l.FromTaskID)
	}
	for _, targets := range dependents {
		sort.Ints(targets)
	}

	layers := graph.TopologicalLayers(nodes, edges)

	ruleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))
	connectorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))
	idStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	var out strings.Builder
	for i, layer := range layers {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(ruleStyle.Render(fmt.Sprintf("── Layer %d ──", i)))
		out.WriteString("\n")

		for _, id := range layer {
			task := visible[id]

			statusStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(scheme.StatusColor(task.Status)))

			out.WriteString(fmt.Sprintf("%s %s %s\n",
				idStyle.Render(fmt.Sprintf("#%d", task.ID)),
				task.Title,
				statusStyle.Render("["+task.Status+"]")))

			for _, dep := range dependents[id] {
				out.WriteString(connectorStyle.Render(fmt.Sprintf("  └─▶ #%d", dep)))
				out.WriteString("\n")
			}
		}
	}

	return out.String()
}
