package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"combobox/internal/domain"
	"combobox/internal/logging"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventQueryChanged     = domain.EventQueryChanged
	EventSelectionChanged = domain.EventSelectionChanged
	EventItemsReplaced    = domain.EventItemsReplaced
	EventStaleResult      = domain.EventStaleResult
	EventError            = domain.EventError
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
	EventCatalogLoaded    = domain.EventCatalogLoaded
)

// Re-export domain event types
type QueryChangedEvent = domain.QueryChangedEvent
type SelectionChangedEvent = domain.SelectionChangedEvent
type ItemsReplacedEvent = domain.ItemsReplacedEvent
type StaleResultEvent = domain.StaleResultEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type CatalogLoadedEvent = domain.CatalogLoadedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// Bus is the concrete implementation of EventBus
type Bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus and starts its dispatcher
func New() *Bus {
	b := &Bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers. Events are dropped when the queue is full.
func (b *Bus) Publish(event DomainEvent) {
	// Query changes fire on every keystroke
	if event.Type() != EventQueryChanged {
		b.logger().Debug("Publishing event", zap.String("type", string(event.Type())))
	}

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		b.logger().Warn("Event bus channel full, dropping event", zap.String("type", string(event.Type())))
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *Bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher. Pending events are discarded.
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *Bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := b.handlers[event.Type()]
			// Copy so handlers run without the lock held
			handlersCopy := make([]EventHandler, len(subs))
			for i, s := range subs {
				handlersCopy[i] = s.handler
			}
			b.mu.RUnlock()

			for _, handler := range handlersCopy {
				b.deliver(handler, event)
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

// deliver calls a handler in order, recovering from panics
func (b *Bus) deliver(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger().Error("Event handler panic",
				zap.String("type", string(event.Type())),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()),
			)
		}
	}()
	h(event)
}

// logger is looked up per call so a bus created before logging.Initialize
// still writes to the configured log
func (b *Bus) logger() *zap.Logger {
	return logging.Named("eventbus")
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (NullBus) Publish(event DomainEvent) {}
func (NullBus) Subscribe(eventType EventType, handler EventHandler) func() {
	return func() {}
}
