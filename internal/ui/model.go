package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"combobox/internal/config"
	"combobox/internal/domain"
	"combobox/internal/eventbus"
	"combobox/internal/logging"
	"combobox/internal/ui/widget"
)

const statusTimeout = 3 * time.Second

// Model is the demo page: one combobox plus a live view of its selection
type Model struct {
	widget *widget.Model
	keys   keyMap
	help   help.Model
	styles Styles
	helpR  *HelpRenderer
	log    *zap.Logger

	width       int
	height      int
	status      string
	statusSeq   int
	inPagerMode bool

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates the page around a widget built from cfg
func NewModel(cfg *config.Config, w *widget.Model) *Model {
	return &Model{
		widget: w,
		keys:   newKeyMap(w.KeyMap()),
		help:   help.New(),
		styles: newStyles(),
		helpR:  NewHelpRenderer(),
		log:    logging.Named("ui").With(zap.String("catalog", cfg.Catalog)),
	}
}

// NewWidget builds the combobox for cfg
func NewWidget(cfg *config.Config, items []domain.Item, opts widget.Options) *widget.Model {
	if opts.Placeholder == "" {
		opts.Placeholder = cfg.Placeholder
	}
	opts.ShowKeywords = cfg.UISettings.ShowKeywords
	opts.CloseOnBlur = cfg.UISettings.CloseOnBlur
	return widget.New(items, opts)
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Init focuses the field
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.widget.Init(), m.widget.Focus())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			m.log.Warn("Help pager failed", zap.Error(msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	return m, m.widget.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	focused := m.widget.Focused()

	switch {
	case key.Matches(msg, m.keys.Abort):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		if focused {
			m.widget.Blur()
			return m, nil
		}
		return m, m.widget.Focus()
	case msg.String() == "f1", !focused && key.Matches(msg, m.keys.Help):
		return m, m.fetchHelpPager(m.helpR.Render(m.keys))
	case !focused && key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	return m, m.widget.Update(msg)
}

// handleMouse translates a left press into widget-relative cells
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	top := lipgloss.Height(m.renderHeader())
	return m.widget.Click(msg.X-pageMargin, msg.Y-top)
}

func (m *Model) handleEvent(e eventbus.DomainEvent) tea.Cmd {
	switch ev := e.(type) {
	case eventbus.SelectionChangedEvent:
		var parts []string
		if len(ev.Added) > 0 {
			parts = append(parts, "added "+strings.Join(domain.Names(ev.Added), ", "))
		}
		if len(ev.Removed) > 0 {
			parts = append(parts, "removed "+strings.Join(domain.Names(ev.Removed), ", "))
		}
		if len(parts) == 0 {
			return nil
		}
		return m.setStatus(strings.Join(parts, "; "))

	case eventbus.ErrorEvent:
		if ev.Err != nil {
			return m.setStatus(fmt.Sprintf("%s: %v", ev.Message, ev.Err))
		}
		return m.setStatus(ev.Message)
	}
	return nil
}

// setStatus shows text and schedules its removal. A later status replaces
// it and keeps its own timer.
func (m *Model) setStatus(text string) tea.Cmd {
	m.statusSeq++
	m.status = text
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// fetchHelpPager returns a command that shows help using ov
func (m *Model) fetchHelpPager(content string) tea.Cmd {
	program := m.program
	return func() tea.Msg {
		if program == nil {
			return helpPagerMsg{err: errNoProgram}
		}

		program.Send(pauseRenderingMsg{})
		err := NewHelpOps(program).ShowHelpInPager(content)
		program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// View renders the page
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.widget.View(),
		"",
		m.renderLiveState(),
		"",
		m.renderFeatures(),
	}
	if m.status != "" {
		sections = append(sections, m.styles.Status.Render(m.status))
	}
	sections = append(sections, "", m.help.View(m.keys))

	return m.styles.Page.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) renderHeader() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Combobox"),
		m.styles.Subtitle.Render("A reusable multi-select combobox for the terminal."),
		"",
		m.styles.Section.Render("TRY IT OUT"),
		m.styles.Label.Render("Select Technologies"),
	)
}

// features mirror the blurbs under the demo widget
var features = [][2]string{
	{"Filtering", "Filters items by name and keywords as you type."},
	{"Keyboard nav", "Arrow keys navigate, Enter selects, Backspace removes."},
	{"Multi-select", "Pick several items; click a tag's × to drop it."},
}

func (m *Model) renderFeatures() string {
	lines := make([]string, len(features))
	for i, f := range features {
		lines[i] = m.styles.FeatureTitle.Render(f[0]) + "  " + m.styles.Subtitle.Render(f[1])
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderLiveState() string {
	selected := m.widget.Selected()

	values := m.styles.PanelKey.Render("(none)")
	if len(selected) > 0 {
		chips := make([]string, len(selected))
		for i, item := range selected {
			chips[i] = m.styles.Value.Render(item.Value)
		}
		values = strings.Join(chips, " ")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Live State"),
		m.styles.PanelKey.Render("Selected: ")+m.styles.Count.Render(fmt.Sprint(len(selected))),
		m.styles.PanelKey.Render("Values: ")+values,
	)
	return m.styles.Panel.Render(body)
}

// Selected returns the widget's selection
func (m *Model) Selected() []domain.Item {
	return m.widget.Selected()
}

// Widget returns the hosted combobox
func (m *Model) Widget() *widget.Model {
	return m.widget
}
