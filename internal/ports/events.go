package ports

import "context"

const (
	// EventGenerationStarted is emitted once the busy flag is acquired and the
	// outbound request is about to be sent.
	EventGenerationStarted = "generation.started"
	// EventGenerationCompleted is emitted after a generated theme is committed.
	EventGenerationCompleted = "generation.completed"
	// EventGenerationFailed is emitted when a generation ends without a theme.
	EventGenerationFailed = "generation.failed"
	// EventGenerationRejected is emitted when a trigger arrives while busy.
	EventGenerationRejected = "generation.rejected"
	// EventThemeSelected is emitted when a preset or history entry is activated.
	EventThemeSelected = "theme.selected"
	// EventThemeExported is emitted after a theme bundle is rendered for export.
	EventThemeExported = "theme.exported"
)

// DomainEvent represents a significant occurrence within the designer.
// Events carry structured payloads that subscribers can use for logging or UI
// updates.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish blocks until all handlers run. Implementations must be
// thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures are returned
// so publishers can log them and continue delivering to remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler.
type Subscription interface {
	Unsubscribe()
}
