package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryChanged     EventType = "QueryChanged"
	EventSelectionChanged EventType = "SelectionChanged"
	EventItemsReplaced    EventType = "ItemsReplaced"
	EventStaleResult      EventType = "StaleResult"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventCatalogLoaded    EventType = "CatalogLoaded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryChangedEvent is emitted when the user edits the combobox text
type QueryChangedEvent struct {
	WidgetID string
	Query    string
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// SelectionChangedEvent is emitted when an item is added to or removed from the selection
type SelectionChangedEvent struct {
	WidgetID string
	Added    []Item
	Removed  []Item
	Selected []Item // full selection after the change, in selection order
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// ItemsReplacedEvent is emitted when the candidate pool is swapped out
type ItemsReplacedEvent struct {
	WidgetID string
	Count    int
}

func (e ItemsReplacedEvent) Type() EventType { return EventItemsReplaced }

// StaleResultEvent is emitted when an out-of-date search result is discarded
type StaleResultEvent struct {
	WidgetID string
	Sequence uint64
	Latest   uint64
}

func (e StaleResultEvent) Type() EventType { return EventStaleResult }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path        string
	Placeholder string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// CatalogLoadedEvent is emitted once a catalog has been read
type CatalogLoadedEvent struct {
	Source string
	Count  int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }
