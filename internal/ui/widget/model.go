package widget

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"combobox/internal/catalog"
	"combobox/internal/combobox"
	"combobox/internal/domain"
	"combobox/internal/eventbus"
	"combobox/internal/logging"
)

// DefaultSearchTimeout bounds a single source search
const DefaultSearchTimeout = 5 * time.Second

// minFieldWidth is the narrowest the text field gets, in cells
const minFieldWidth = 20

// Options configures a widget
type Options struct {
	Placeholder   string
	ShowKeywords  bool
	CloseOnBlur   bool
	Source        catalog.Source // optional; searched on every query change
	SearchTimeout time.Duration
	Bus           eventbus.EventBus
}

// Model is the combobox component. The host forwards messages to Update,
// mouse clicks to Click, and draws View.
type Model struct {
	state   *combobox.State
	input   textinput.Model
	keys    KeyMap
	styles  *Styles
	opts    Options
	focused bool
	pending tea.Cmd
	log     *zap.Logger
}

// New creates a widget over items
func New(items []domain.Item, opts Options) *Model {
	if opts.SearchTimeout <= 0 {
		opts.SearchTimeout = DefaultSearchTimeout
	}

	m := &Model{
		input:  textinput.New(),
		keys:   DefaultKeyMap(),
		styles: NewStyles(),
		opts:   opts,
		log:    logging.Named("widget"),
	}
	m.input.Prompt = "" // tags are drawn in front of the field
	m.input.Placeholder = opts.Placeholder

	stateOpts := []combobox.Option{
		combobox.WithQueryHook(m.onQueryChanged),
		combobox.WithBus(opts.Bus),
	}
	if opts.CloseOnBlur {
		stateOpts = append(stateOpts, combobox.WithBlurHook(combobox.CloseOnBlur))
	}
	m.state = combobox.New(items, stateOpts...)
	m.syncInputWidth()

	return m
}

// Init starts the cursor blinking
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Focus gives the text field keyboard focus
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	m.state.Focus()
	return m.input.Focus()
}

// Blur removes keyboard focus
func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
	m.state.Blur()
}

// Focused reports whether the field has keyboard focus
func (m *Model) Focused() bool {
	return m.focused
}

// Update handles key presses, search results and cursor messages
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case itemsLoadedMsg:
		if msg.widgetID != m.state.ID() {
			return nil
		}
		if m.state.ApplyResult(msg.seq, msg.items) {
			m.log.Debug("Search results applied",
				zap.String("query", msg.query),
				zap.Int("items", len(msg.items)),
			)
		}
		return nil

	case searchFailedMsg:
		if msg.widgetID != m.state.ID() {
			return nil
		}
		m.log.Warn("Search failed", zap.Uint64("seq", msg.seq), zap.Error(msg.err))
		if m.state.EndSearch(msg.seq) && m.opts.Bus != nil {
			m.opts.Bus.Publish(eventbus.ErrorEvent{Message: "search failed", Err: msg.err})
		}
		return nil

	case tea.KeyMsg:
		if !m.focused {
			return nil
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	prevQuery := m.state.Query()
	var cmds []tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Down):
		m.state.HandleKey(combobox.KeyArrowDown)
	case key.Matches(msg, m.keys.Up):
		m.state.HandleKey(combobox.KeyArrowUp)
	case key.Matches(msg, m.keys.Select):
		m.state.HandleKey(combobox.KeyEnter)
	case key.Matches(msg, m.keys.Dismiss):
		m.state.HandleKey(combobox.KeyEscape)
	default:
		// Key-down runs before the field edits its text, so Backspace
		// only pops a tag when the query was already empty
		if key.Matches(msg, m.keys.Backspace) {
			m.state.HandleKey(combobox.KeyBackspace)
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)

		if value := m.input.Value(); value != m.state.Query() {
			m.state.SetQuery(value)
		}
	}

	m.afterMutation(prevQuery)
	cmds = append(cmds, m.takePending())
	return tea.Batch(cmds...)
}

// Click handles a left click at widget-relative cell (x, y). Clicks on a
// dropdown row or a tag's remove glyph act without blurring the field
// first; clicks outside the widget blur it.
func (m *Model) Click(x, y int) tea.Cmd {
	_, hits := m.render()
	hit, ok := HitAt(hits, x, y)
	if !ok {
		m.Blur()
		return nil
	}

	prevQuery := m.state.Query()
	var cmd tea.Cmd

	switch hit.Kind {
	case HitRow:
		m.state.SelectItem(hit.Item)
	case HitTagRemove:
		m.state.RemoveItem(hit.Item)
	case HitField:
		cmd = m.Focus()
	}

	m.afterMutation(prevQuery)
	return tea.Batch(cmd, m.takePending())
}

// View renders the widget
func (m *Model) View() string {
	view, _ := m.render()
	return view
}

// ViewModel derives the current view model
func (m *Model) ViewModel() ViewModel {
	return BuildViewModel(m.state, m.opts.Placeholder, m.opts.ShowKeywords, m.focused)
}

// State exposes the underlying state machine
func (m *Model) State() *combobox.State {
	return m.state
}

// Selected returns the current selection
func (m *Model) Selected() []domain.Item {
	return m.state.Selected()
}

// SetItems replaces the candidate pool
func (m *Model) SetItems(items []domain.Item) {
	m.state.SetItems(items)
}

// KeyMap returns the widget's key bindings
func (m *Model) KeyMap() KeyMap {
	return m.keys
}

func (m *Model) render() (string, []Hit) {
	return Render(m.ViewModel(), m.input.View(), m.styles)
}

// afterMutation re-syncs the text field from the state and, with a source,
// refreshes results when the query was cleared by a selection or Escape.
func (m *Model) afterMutation(prevQuery string) {
	query := m.state.Query()

	if len(m.state.Selected()) > 0 {
		m.input.Placeholder = ""
	} else {
		m.input.Placeholder = m.opts.Placeholder
	}
	// Size before SetValue so the field never scrolls the query
	m.syncInputWidth()

	if m.input.Value() != query {
		m.input.SetValue(query)
		m.input.CursorEnd()
	}

	if m.opts.Source != nil && m.pending == nil && query != prevQuery {
		m.pending = m.search(query)
	}
}

// syncInputWidth sizes the field to fit the placeholder and the query plus
// the cursor. A zero width makes textinput draw only the placeholder's first rune.
func (m *Model) syncInputWidth() {
	m.input.Width = max(
		minFieldWidth,
		lipgloss.Width(m.input.Placeholder),
		lipgloss.Width(m.state.Query())+1,
	)
}

// onQueryChanged is the state's query hook
func (m *Model) onQueryChanged(query string) {
	if m.opts.Source == nil {
		return
	}
	m.pending = m.search(query)
}

// search starts a tagged source search. Only the latest search's result is applied.
func (m *Model) search(query string) tea.Cmd {
	seq := m.state.BeginSearch()
	src := m.opts.Source
	id := m.state.ID()
	timeout := m.opts.SearchTimeout

	m.log.Debug("Search started", zap.String("query", query), zap.Uint64("seq", seq))

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		items, err := src.Search(ctx, query)
		if err != nil {
			return searchFailedMsg{widgetID: id, seq: seq, err: err}
		}
		return itemsLoadedMsg{widgetID: id, seq: seq, query: query, items: items}
	}
}

func (m *Model) takePending() tea.Cmd {
	cmd := m.pending
	m.pending = nil
	return cmd
}
