package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// errNoProgram is returned when the pager is requested outside a running program
var errNoProgram = errors.New("program not set")

// HelpRenderer builds the help page shown in the pager
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	note    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		key:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		note: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

// Render generates the help text for keys
func (r *HelpRenderer) Render(keys keyMap) string {
	var help strings.Builder

	help.WriteString(r.title.Render("Combobox Help"))
	help.WriteString("\n")

	r.writeSection(&help, "Search", []key.Binding{keys.widget.Down, keys.widget.Up})
	help.WriteString(r.note.Render("  Type to filter by name or keyword, e.g. 'web' or 'python'"))
	help.WriteString("\n")

	r.writeSection(&help, "Selection", []key.Binding{keys.widget.Select, keys.widget.Dismiss, keys.widget.Backspace})

	help.WriteString(r.section.Render("Mouse"))
	help.WriteString("\n")
	r.writeLine(&help, "click row", "Select the item")
	r.writeLine(&help, "click ×", "Remove the tag")
	r.writeLine(&help, "click outside", "Leave the field")

	r.writeSection(&help, "Other", []key.Binding{keys.Focus, keys.Help, keys.Quit, keys.Abort})
	help.WriteString(r.note.Render("  q and ? only apply while the field is not focused"))

	return help.String()
}

func (r *HelpRenderer) writeSection(b *strings.Builder, name string, bindings []key.Binding) {
	b.WriteString(r.section.Render(name))
	b.WriteString("\n")
	for _, binding := range bindings {
		h := binding.Help()
		r.writeLine(b, h.Key, h.Desc)
	}
}

func (r *HelpRenderer) writeLine(b *strings.Builder, k, desc string) {
	fmt.Fprintf(b, "  %s %s\n", r.key.Width(14).Render(k), r.desc.Render(desc))
}

// HelpOps shows the help page in ov
type HelpOps struct {
	program *tea.Program
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{program: program}
}

// ShowHelpInPager hands the terminal to ov until the user quits it
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return errNoProgram
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Give ov time to exit before restoring
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
