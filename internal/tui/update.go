package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update is the board's message loop
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case dataMsg:
		m.statuses = msg.statuses
		m.byStatus = groupTasks(msg.tasks)
		m.loaded = true
		m.err = nil
		m.clampCursor()
		return m, nil

	case detailMsg:
		m.detail = msg.detail
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The detail overlay swallows everything except close and quit
	if m.detail != nil {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.ViewTask):
			m.detail = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.PrevColumn):
		if m.col > 0 {
			m.col--
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.NextColumn):
		if m.col < len(m.statuses)-1 {
			m.col++
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.PrevTask):
		if m.row > 0 {
			m.row--
		}

	case key.Matches(msg, m.keys.NextTask):
		if m.col >= 0 && m.col < len(m.statuses) {
			if m.row < len(m.byStatus[m.statuses[m.col].Name])-1 {
				m.row++
			}
		}

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadData

	case key.Matches(msg, m.keys.ViewTask):
		if task := m.selectedTask(); task != nil {
			return m, m.loadDetail(task.ID)
		}
	}

	return m, nil
}
