// Package event defines the envelope shared by all domain events raised by
// aggregates. Events are collected on the aggregate and handed to the event
// publisher once the unit of work that persisted them commits.
package event

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
)

// DomainEvent is implemented by every event an aggregate raises.
type DomainEvent interface {
	EventID() kernel.UUID
	EventType() string
	AggregateID() kernel.UUID
	OccurredAt() time.Time
}

// Aggregate is implemented by aggregates that buffer domain events.
type Aggregate interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// Base carries the envelope fields. Concrete events embed it.
type Base struct {
	id          kernel.UUID
	eventType   string
	aggregateID kernel.UUID
	occurredAt  time.Time
}

func NewBase(eventType string, aggregateID kernel.UUID, occurredAt time.Time) Base {
	return Base{
		id:          kernel.NewUUID(),
		eventType:   eventType,
		aggregateID: aggregateID,
		occurredAt:  occurredAt,
	}
}

func (b Base) EventID() kernel.UUID {
	return b.id
}

func (b Base) EventType() string {
	return b.eventType
}

func (b Base) AggregateID() kernel.UUID {
	return b.aggregateID
}

func (b Base) OccurredAt() time.Time {
	return b.occurredAt
}

// Recorder is embedded by aggregates to buffer their events.
type Recorder struct {
	events []DomainEvent
}

func (r *Recorder) Record(e DomainEvent) {
	r.events = append(r.events, e)
}

func (r *Recorder) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Recorder) ClearDomainEvents() {
	r.events = nil
}
