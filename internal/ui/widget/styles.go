package widget

import "github.com/charmbracelet/lipgloss"

// Styles contains the style definitions for the widget
type Styles struct {
	Field        lipgloss.Style
	FieldFocused lipgloss.Style
	Tag          lipgloss.Style
	Placeholder  lipgloss.Style
	Dropdown     lipgloss.Style
	Row          lipgloss.Style
	RowHighlight lipgloss.Style
	Keywords     lipgloss.Style
	Loading      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Field: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		FieldFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Tag: lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		Placeholder: lipgloss.NewStyle().Faint(true),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")),
		Row:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		RowHighlight: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Background(lipgloss.Color("238")).Bold(true),
		Keywords:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Loading:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
	}
}
