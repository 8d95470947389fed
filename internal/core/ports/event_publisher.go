package ports

import (
	"context"

	"orderflow/internal/core/domain/model/event"
)

// EventPublisher delivers domain events after the transaction that produced
// them has committed.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
