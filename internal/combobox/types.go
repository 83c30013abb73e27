package combobox

import (
	"go.uber.org/zap"

	"combobox/internal/domain"
	"combobox/internal/eventbus"
)

// Key names understood by HandleKey
type Key string

const (
	KeyArrowDown Key = "ArrowDown"
	KeyArrowUp   Key = "ArrowUp"
	KeyEnter     Key = "Enter"
	KeyEscape    Key = "Escape"
	KeyBackspace Key = "Backspace"
)

// QueryHook is called after every query change. Consumers use it to start
// a remote search; results are fed back through SetItems or ApplyResult.
type QueryHook func(query string)

// BlurHook is called when the text field loses focus. It receives the state
// so a consumer can close the dropdown.
type BlurHook func(s *State)

// Option configures a State
type Option func(*State)

// WithQueryHook sets the query extension hook
func WithQueryHook(fn QueryHook) Option {
	return func(s *State) {
		s.onQueryChanged = fn
	}
}

// WithBlurHook sets the blur extension hook
func WithBlurHook(fn BlurHook) Option {
	return func(s *State) {
		s.onBlur = fn
	}
}

// CloseOnBlur is a BlurHook that closes the dropdown
func CloseOnBlur(s *State) {
	s.CloseDropdown()
}

// WithBus publishes state changes on bus
func WithBus(bus eventbus.EventBus) Option {
	return func(s *State) {
		if bus != nil {
			s.bus = bus
		}
	}
}

// WithID overrides the generated widget instance ID
func WithID(id string) Option {
	return func(s *State) {
		s.id = id
	}
}

// WithLogger sets the logger used for state transitions
func WithLogger(l *zap.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.log = l
		}
	}
}

// Snapshot is a read-only copy of the state, used by views and tests
type Snapshot struct {
	ID          string
	Query       string
	Items       []domain.Item
	Selected    []domain.Item
	Filtered    []domain.Item
	Highlighted int
	Open        bool
	Loading     bool
}
