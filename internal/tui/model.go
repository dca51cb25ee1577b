// Package tui implements the interactive kanban board. It is a read-only
// projection: browsing and inspecting happens here, mutations go through the
// CLI commands.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelar/tarea/internal/app"
	"github.com/avelar/tarea/internal/config"
	"github.com/avelar/tarea/internal/models"
)

// Model is the board's bubbletea model
type Model struct {
	app  *app.App
	cfg  *config.Config
	keys keyMap
	help help.Model

	statuses []*models.Status
	byStatus map[string][]*models.Task

	col    int
	row    int
	width  int
	height int

	detail *models.TaskDetail // non-nil while the overlay is open
	err    error
	loaded bool
}

// NewModel creates the initial board model
func NewModel(a *app.App, cfg *config.Config) Model {
	return Model{
		app:  a,
		cfg:  cfg,
		keys: newKeyMap(cfg.KeyMappings),
		help: help.New(),
	}
}

// Init kicks off the first data load
func (m Model) Init() tea.Cmd {
	return m.loadData
}

// Messages

type dataMsg struct {
	statuses []*models.Status
	tasks    []*models.Task
}

type detailMsg struct {
	detail *models.TaskDetail
}

type errMsg struct {
	err error
}

// loadData fetches the full board state in one shot
func (m Model) loadData() tea.Msg {
	ctx := context.Background()

	statuses, err := m.app.StatusService.ListStatuses(ctx)
	if err != nil {
		return errMsg{err}
	}
	tasks, err := m.app.TaskService.ListTasks(ctx, models.TaskFilters{})
	if err != nil {
		return errMsg{err}
	}
	return dataMsg{statuses: statuses, tasks: tasks}
}

// loadDetail fetches one task with tags and links for the overlay
func (m Model) loadDetail(taskID int) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.app.TaskService.GetTaskDetail(context.Background(), taskID)
		if err != nil {
			return errMsg{err}
		}
		return detailMsg{detail: detail}
	}
}

// selectedTask returns the task under the cursor, or nil for an empty column
func (m Model) selectedTask() *models.Task {
	if m.col < 0 || m.col >= len(m.statuses) {
		return nil
	}
	column := m.byStatus[m.statuses[m.col].Name]
	if m.row < 0 || m.row >= len(column) {
		return nil
	}
	return column[m.row]
}

// clampCursor keeps the cursor on a valid column and row after data changes
func (m *Model) clampCursor() {
	if len(m.statuses) == 0 {
		m.col, m.row = 0, 0
		return
	}
	if m.col >= len(m.statuses) {
		m.col = len(m.statuses) - 1
	}
	if m.col < 0 {
		m.col = 0
	}
	column := m.byStatus[m.statuses[m.col].Name]
	if m.row >= len(column) {
		m.row = len(column) - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func groupTasks(tasks []*models.Task) map[string][]*models.Task {
	byStatus := make(map[string][]*models.Task)
	for _, t := range tasks {
		byStatus[t.Status] = append(byStatus[t.Status], t)
	}
	return byStatus
}
