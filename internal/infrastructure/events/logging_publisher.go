package events

import (
	"context"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/skinlab/internal/ports"
)

// LoggingPublisher writes every designer event as a structured log entry and
// then fans it out to subscribers synchronously.
type LoggingPublisher struct {
	logger ports.Logger

	mu     sync.RWMutex
	subs   map[string][]handlerEntry
	nextID int
}

type handlerEntry struct {
	id      int
	handler ports.EventHandler
}

// NewLoggingPublisher creates an event publisher backed by logger.
func NewLoggingPublisher(logger ports.Logger) *LoggingPublisher {
	return &LoggingPublisher{
		logger: logger,
		subs:   make(map[string][]handlerEntry),
	}
}

// Publish logs the event and invokes every handler subscribed to its type.
// Handler failures are logged and never stop delivery.
func (p *LoggingPublisher) Publish(ctx context.Context, event ports.DomainEvent) error {
	if p == nil || event == nil {
		return nil
	}

	p.mu.RLock()
	handlers := append([]handlerEntry(nil), p.subs[event.EventType()]...)
	p.mu.RUnlock()

	if p.logger != nil {
		p.logger.Info(ctx, "designer event", eventFields(event)...)
	}

	for _, entry := range handlers {
		if err := entry.handler(ctx, event); err != nil && p.logger != nil {
			p.logger.Warn(ctx, "event handler failed", "event_type", event.EventType(), "error", err.Error())
		}
	}
	return nil
}

func eventFields(event ports.DomainEvent) []interface{} {
	fields := []interface{}{"event_type", event.EventType()}
	switch payload := event.Payload().(type) {
	case nil:
	case map[string]interface{}:
		keys := make([]string, 0, len(payload))
		for key := range payload {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fields = append(fields, key, payload[key])
		}
	default:
		fields = append(fields, "payload", payload)
	}
	return fields
}

// Subscribe registers handler for eventType.
func (p *LoggingPublisher) Subscribe(eventType string, handler ports.EventHandler) (ports.Subscription, error) {
	if p == nil || handler == nil {
		return unsubscribeFunc(nil), nil
	}

	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs[eventType] = append(p.subs[eventType], handlerEntry{id: id, handler: handler})
	p.mu.Unlock()

	return unsubscribeFunc(func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		current := p.subs[eventType]
		for i, entry := range current {
			if entry.id == id {
				p.subs[eventType] = append(current[:i:i], current[i+1:]...)
				return
			}
		}
	}), nil
}

type unsubscribeFunc func()

func (f unsubscribeFunc) Unsubscribe() {
	if f != nil {
		f()
	}
}

// Event is a plain DomainEvent carrying a key/value payload.
type Event struct {
	Type   string
	Fields map[string]interface{}
}

// EventType implements ports.DomainEvent.
func (e Event) EventType() string { return e.Type }

// Payload implements ports.DomainEvent.
func (e Event) Payload() interface{} { return e.Fields }

var _ ports.EventPublisher = (*LoggingPublisher)(nil)
