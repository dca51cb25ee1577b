package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/avelar/tarea/internal/config"
)

// keyMap holds the board's key bindings, built from the configured mappings
// so users can remap navigation without recompiling.
type keyMap struct {
	PrevColumn key.Binding
	NextColumn key.Binding
	PrevTask   key.Binding
	NextTask   key.Binding
	ViewTask   key.Binding
	Refresh    key.Binding
	Close      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		PrevColumn: key.NewBinding(
			key.WithKeys(km.PrevColumn, "left"),
			key.WithHelp(helpLabel(km.PrevColumn), "prev column"),
		),
		NextColumn: key.NewBinding(
			key.WithKeys(km.NextColumn, "right"),
			key.WithHelp(helpLabel(km.NextColumn), "next column"),
		),
		PrevTask: key.NewBinding(
			key.WithKeys(km.PrevTask, "up"),
			key.WithHelp(helpLabel(km.PrevTask), "prev task"),
		),
		NextTask: key.NewBinding(
			key.WithKeys(km.NextTask, "down"),
			key.WithHelp(helpLabel(km.NextTask), "next task"),
		),
		ViewTask: key.NewBinding(
			key.WithKeys(km.ViewTask, "enter"),
			key.WithHelp(helpLabel(km.ViewTask), "view task"),
		),
		Refresh: key.NewBinding(
			key.WithKeys(km.Refresh),
			key.WithHelp(helpLabel(km.Refresh), "refresh"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(helpLabel(km.ShowHelp), "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(helpLabel(km.Quit), "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTask, k.PrevTask, k.NextColumn, k.PrevColumn, k.ViewTask, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevColumn, k.NextColumn, k.PrevTask, k.NextTask},
		{k.ViewTask, k.Close, k.Refresh},
		{k.Help, k.Quit},
	}
}

// helpLabel makes unprintable key names readable in the help footer.
func helpLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
