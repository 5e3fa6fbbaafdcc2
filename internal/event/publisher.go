package event

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Publisher accepts domain events for downstream notification. Implementations
// must tolerate being called from concurrent request handlers.
type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
}

// InMemoryPublisher retains published events and logs each one. It is the
// local at-least-once dispatch used in development and tests.
type InMemoryPublisher struct {
	log *zap.Logger

	mu        sync.Mutex
	published []Event
}

func NewInMemoryPublisher(log *zap.Logger) *InMemoryPublisher {
	return &InMemoryPublisher{log: log.Named("event.publisher")}
}

func (p *InMemoryPublisher) Publish(_ context.Context, events ...Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, ev := range events {
		p.published = append(p.published, ev)
		p.log.Info("event published",
			zap.String("event_type", ev.EventType()),
			zap.String("subscription_id", ev.Subscription().String()),
			zap.Time("occurred_at", ev.OccurredAt()),
		)
	}
	return nil
}

// Published returns a snapshot of everything published so far.
func (p *InMemoryPublisher) Published() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]Event, len(p.published))
	copy(out, p.published)
	return out
}
