package eventbus

import (
	"context"
	"log/slog"

	"orderflow/internal/core/domain/model/event"
	"orderflow/internal/core/domain/model/inventory"
)

// LogPublisher writes domain events to the structured log. It is used when
// no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger.With("component", "event_log")}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	for _, e := range events {
		level := slog.LevelInfo
		if moved, ok := e.(inventory.StockMovedEvent); ok && moved.IsLowStock() {
			level = slog.LevelWarn
		}
		p.logger.Log(ctx, level, "domain event",
			"event_id", e.EventID().String(),
			"event_type", e.EventType(),
			"aggregate_id", e.AggregateID().String(),
			"occurred_at", e.OccurredAt(),
			"payload", payloadOf(e),
		)
	}
	return nil
}
