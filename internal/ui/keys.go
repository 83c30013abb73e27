package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"combobox/internal/ui/widget"
)

// keyMap holds the page bindings plus the widget's own
type keyMap struct {
	Focus  key.Binding
	Help   key.Binding
	Quit   key.Binding
	Abort  key.Binding
	widget widget.KeyMap
}

func newKeyMap(w widget.KeyMap) keyMap {
	return keyMap{
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "focus"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?/f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		widget: w,
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return append(k.widget.ShortHelp(), k.Focus, k.Help, k.Abort)
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return append(k.widget.FullHelp(), []key.Binding{k.Focus, k.Help, k.Quit, k.Abort})
}
