package combobox

import (
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"combobox/internal/domain"
	"combobox/internal/eventbus"
	"combobox/internal/logging"
)

// State is the interaction state machine behind one combobox widget.
// All mutation goes through its methods; every method leaves the state
// consistent before returning. Not safe for concurrent use: it is meant to
// be driven from a single UI loop.
type State struct {
	id          string
	items       []domain.Item
	selected    []domain.Item
	query       string
	highlighted int
	open        bool
	loading     bool

	onQueryChanged QueryHook
	onBlur         BlurHook
	seq            Sequencer

	bus eventbus.EventBus
	log *zap.Logger
}

// New creates the state for a widget instance over an initial item list
func New(items []domain.Item, opts ...Option) *State {
	s := &State{
		id:    uuid.NewString(),
		items: slices.Clone(items),
		bus:   eventbus.NullBus{},
		log:   logging.Named("combobox"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.String("widget", s.id))
	return s
}

// SetQuery records new text input, opens the dropdown and resets the highlight.
func (s *State) SetQuery(text string) {
	s.query = text
	s.open = true
	s.highlighted = 0

	s.bus.Publish(eventbus.QueryChangedEvent{WidgetID: s.id, Query: text})

	if s.onQueryChanged != nil {
		s.onQueryChanged(text)
	}
}

// Focus opens the dropdown
func (s *State) Focus() {
	s.open = true
}

// Blur runs the blur hook. Without one it does nothing.
func (s *State) Blur() {
	if s.onBlur != nil {
		s.onBlur(s)
	}
}

// CloseDropdown hides the dropdown
func (s *State) CloseDropdown() {
	s.open = false
}

// SelectItem appends item unless its value is already selected.
// The query and highlight are reset either way.
func (s *State) SelectItem(item domain.Item) {
	added := false
	if s.indexOfSelected(item.Value) < 0 {
		s.selected = append(s.selected, item)
		added = true
	}
	s.query = ""
	s.highlighted = 0

	if added {
		s.log.Debug("Item selected", zap.String("value", item.Value))
		s.publishSelection([]domain.Item{item}, nil)
	}
}

// RemoveItem drops the selected entry with the same value as item, if any
func (s *State) RemoveItem(item domain.Item) {
	i := s.indexOfSelected(item.Value)
	if i < 0 {
		return
	}
	removed := s.selected[i]
	s.selected = slices.Delete(s.selected, i, i+1)

	s.log.Debug("Item removed", zap.String("value", removed.Value))
	s.publishSelection(nil, []domain.Item{removed})
}

// HandleKey dispatches a key press. Unknown keys are ignored; plain
// character input goes through SetQuery instead.
func (s *State) HandleKey(key Key) {
	switch key {
	case KeyArrowDown:
		if count := len(s.filtered()); count > 0 {
			s.highlighted = (s.highlighted + 1) % count
		}
	case KeyArrowUp:
		if count := len(s.filtered()); count > 0 {
			s.highlighted = (s.highlighted - 1 + count) % count
		}
	case KeyEnter:
		items := s.filtered()
		if s.highlighted >= 0 && s.highlighted < len(items) {
			s.SelectItem(items[s.highlighted])
		}
	case KeyEscape:
		s.open = false
		s.query = ""
		s.highlighted = 0
	case KeyBackspace:
		if s.query == "" && len(s.selected) > 0 {
			last := s.selected[len(s.selected)-1]
			s.selected = s.selected[:len(s.selected)-1]
			s.log.Debug("Last item popped", zap.String("value", last.Value))
			s.publishSelection(nil, []domain.Item{last})
		}
	}
}

// SetItems replaces the candidate pool. The selection is kept.
func (s *State) SetItems(items []domain.Item) {
	s.items = slices.Clone(items)
	s.highlighted = 0
	s.bus.Publish(eventbus.ItemsReplacedEvent{WidgetID: s.id, Count: len(s.items)})
}

// SetLoading marks an external search as in flight
func (s *State) SetLoading(loading bool) {
	s.loading = loading
}

// BeginSearch issues a sequence number for a search about to start and
// marks the state as loading.
func (s *State) BeginSearch() uint64 {
	s.loading = true
	return s.seq.Next()
}

// ApplyResult installs items returned by the search tagged seq. Results
// from any search other than the latest one are dropped. Reports whether
// the items were applied.
func (s *State) ApplyResult(seq uint64, items []domain.Item) bool {
	if !s.seq.IsCurrent(seq) {
		latest := s.seq.Latest()
		s.log.Debug("Discarding stale search result",
			zap.Uint64("seq", seq),
			zap.Uint64("latest", latest),
		)
		s.bus.Publish(eventbus.StaleResultEvent{WidgetID: s.id, Sequence: seq, Latest: latest})
		return false
	}
	s.SetItems(items)
	s.loading = false
	return true
}

// EndSearch clears loading for a search that finished without results,
// provided it is still the latest one.
func (s *State) EndSearch(seq uint64) bool {
	if !s.seq.IsCurrent(seq) {
		return false
	}
	s.loading = false
	return true
}

// Filtered returns the items matching the current query. It is recomputed
// on every call.
func (s *State) Filtered() []domain.Item {
	return slices.Clone(s.filtered())
}

func (s *State) filtered() []domain.Item {
	return Filter(s.items, s.query)
}

// HighlightedItem returns the filtered item under the highlight
func (s *State) HighlightedItem() (domain.Item, bool) {
	items := s.filtered()
	if s.highlighted < 0 || s.highlighted >= len(items) {
		return domain.Item{}, false
	}
	return items[s.highlighted], true
}

// ID returns the widget instance ID
func (s *State) ID() string {
	return s.id
}

// Query returns the raw text input
func (s *State) Query() string {
	return s.query
}

// Items returns the candidate pool
func (s *State) Items() []domain.Item {
	return slices.Clone(s.items)
}

// Selected returns the selection in selection order
func (s *State) Selected() []domain.Item {
	return slices.Clone(s.selected)
}

// SelectedValues returns the value keys of the selection
func (s *State) SelectedValues() []string {
	return domain.Values(s.selected)
}

// IsSelected reports whether an item with value is selected
func (s *State) IsSelected(value string) bool {
	return s.indexOfSelected(value) >= 0
}

// Highlighted returns the highlight index into Filtered
func (s *State) Highlighted() int {
	return s.highlighted
}

// IsOpen reports whether the dropdown is open
func (s *State) IsOpen() bool {
	return s.open
}

// Loading reports whether an external search is in flight
func (s *State) Loading() bool {
	return s.loading
}

// Snapshot copies the current state
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		ID:          s.id,
		Query:       s.query,
		Items:       s.Items(),
		Selected:    s.Selected(),
		Filtered:    s.Filtered(),
		Highlighted: s.highlighted,
		Open:        s.open,
		Loading:     s.loading,
	}
}

func (s *State) indexOfSelected(value string) int {
	return slices.IndexFunc(s.selected, func(i domain.Item) bool {
		return i.Value == value
	})
}

func (s *State) publishSelection(added, removed []domain.Item) {
	s.bus.Publish(eventbus.SelectionChangedEvent{
		WidgetID: s.id,
		Added:    added,
		Removed:  removed,
		Selected: s.Selected(),
	})
}
