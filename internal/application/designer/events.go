package designer

import (
	"context"
	"fmt"
)

// designerEvent is the ports.DomainEvent emitted by the service. Its payload
// is always a flat map so publishers can log it field by field.
type designerEvent struct {
	kind   string
	fields map[string]interface{}
}

func (e designerEvent) EventType() string    { return e.kind }
func (e designerEvent) Payload() interface{} { return e.fields }

// emit publishes kind with the given key/value pairs. Publishing is best
// effort: a failure is logged and never reaches the caller.
func (s *Service) emit(ctx context.Context, kind string, kv ...interface{}) {
	if s.events == nil {
		return
	}
	fields := make(map[string]interface{}, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		fields[fmt.Sprint(kv[i])] = kv[i+1]
	}
	if err := s.events.Publish(ctx, designerEvent{kind: kind, fields: fields}); err != nil {
		s.logger.Warn(ctx, "failed to publish designer event", "event_type", kind, "error", err.Error())
	}
}
