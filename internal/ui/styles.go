package ui

import "github.com/charmbracelet/lipgloss"

const pageMargin = 2

// Styles for the demo page
type Styles struct {
	Page     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Section  lipgloss.Style
	Label    lipgloss.Style
	Panel    lipgloss.Style
	PanelKey lipgloss.Style
	Count    lipgloss.Style
	Value    lipgloss.Style
	Status   lipgloss.Style

	FeatureTitle lipgloss.Style
}

func newStyles() Styles {
	return Styles{
		Page: lipgloss.NewStyle().PaddingLeft(pageMargin),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("241")),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		PanelKey: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Count:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		FeatureTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Width(14),
	}
}
