package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"homelyhub/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventPageRequested          = domain.EventPageRequested
	EventPropertiesLoaded       = domain.EventPropertiesLoaded
	EventPropertiesLoadFailed   = domain.EventPropertiesLoadFailed
	EventFiltersApplied         = domain.EventFiltersApplied
	EventFiltersCleared         = domain.EventFiltersCleared
	EventUserRequested          = domain.EventUserRequested
	EventUserLoaded             = domain.EventUserLoaded
	EventProfileUpdateRequested = domain.EventProfileUpdateRequested
	EventProfileUpdated         = domain.EventProfileUpdated
	EventProfileUpdateFailed    = domain.EventProfileUpdateFailed
	EventError                  = domain.EventError
	EventAppReady               = domain.EventAppReady
)

// Re-export domain event types
type PageRequestedEvent = domain.PageRequestedEvent
type PropertiesLoadedEvent = domain.PropertiesLoadedEvent
type PropertiesLoadFailedEvent = domain.PropertiesLoadFailedEvent
type FiltersAppliedEvent = domain.FiltersAppliedEvent
type FiltersClearedEvent = domain.FiltersClearedEvent
type UserRequestedEvent = domain.UserRequestedEvent
type UserLoadedEvent = domain.UserLoadedEvent
type ProfileUpdateRequestedEvent = domain.ProfileUpdateRequestedEvent
type ProfileUpdatedEvent = domain.ProfileUpdatedEvent
type ProfileUpdateFailedEvent = domain.ProfileUpdateFailedEvent
type ErrorEvent = domain.ErrorEvent
type AppReadyEvent = domain.AppReadyEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	logger    *zap.Logger
}

// New creates a new event bus
func New(logger *zap.Logger) EventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
		logger:    logger.Named("eventbus"),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	b.logger.Debug("publishing event", zap.String("type", string(event.Type())))

	select {
	case b.eventChan <- event:
	default:
		b.logger.Warn("event bus channel full, dropping event", zap.String("type", string(event.Type())))
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
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

// Close stops the dispatcher and discards queued events
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			// Handlers may block on network calls, so each runs on its own goroutine
			for _, s := range subs {
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							b.logger.Error("event handler panic",
								zap.String("type", string(eventType)),
								zap.Any("panic", r),
								zap.ByteString("stack", debug.Stack()))
						}
					}()
					h(event)
				}(s.handler, event.Type())
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
