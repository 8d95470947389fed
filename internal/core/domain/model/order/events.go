package order

import (
	"orderflow/internal/core/domain/model/event"
	"orderflow/internal/core/domain/model/kernel"
)

const (
	CreatedEventType       = "order.created"
	StatusChangedEventType = "order.status_changed"
)

type CreatedEvent struct {
	event.Base

	Number     string
	CustomerID kernel.UUID
}

type StatusChangedEvent struct {
	event.Base

	Number string
	From   string
	To     string
	UserID string
}
