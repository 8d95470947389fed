package event_test

import (
	"testing"
	"time"

	"orderflow/internal/core/domain/model/event"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleEvent struct {
	event.Base
}

func TestRecorder(t *testing.T) {
	var rec event.Recorder
	aggregateID := kernel.NewUUID()
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	rec.Record(sampleEvent{Base: event.NewBase("sample.happened", aggregateID, at)})
	rec.Record(sampleEvent{Base: event.NewBase("sample.happened", aggregateID, at)})

	events := rec.DomainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, "sample.happened", events[0].EventType())
	assert.True(t, events[0].AggregateID().IsEqual(aggregateID))
	assert.Equal(t, at, events[0].OccurredAt())
	assert.False(t, events[0].EventID().IsEqual(events[1].EventID()))

	rec.ClearDomainEvents()
	assert.Empty(t, rec.DomainEvents())
}
