package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"orderflow/internal/core/domain/model/event"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName      = "orderflow/eventbus"
	eventTypeHeader = "event_type"
)

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaConfig configures NewKafkaPublisher.
type KafkaConfig struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
}

// KafkaPublisher writes each domain event as one JSON message keyed by its
// aggregate id, so events of one aggregate stay ordered within a partition.
// The caller's trace context travels in the message headers.
type KafkaPublisher struct {
	writer     messageWriter
	topic      string
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
	logger     *slog.Logger
}

func NewKafkaPublisher(cfg KafkaConfig, logger *slog.Logger) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	if cfg.Topic == "" {
		return nil, errors.New("kafka topic is required")
	}
	if cfg.BatchTimeout <= 0 {
		cfg.BatchTimeout = 10 * time.Millisecond
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return newKafkaPublisher(writer, cfg.Topic, logger), nil
}

func newKafkaPublisher(writer messageWriter, topic string, logger *slog.Logger) *KafkaPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &KafkaPublisher{
		writer:     writer,
		topic:      topic,
		tracer:     otel.Tracer(tracerName),
		propagator: otel.GetTextMapPropagator(),
		logger:     logger.With("component", "kafka_publisher", "topic", topic),
	}
}

// Publish sends events in one batch. Either every message is accepted by the
// brokers or an error is returned.
func (p *KafkaPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	ctx, span := p.tracer.Start(ctx, "eventbus.publish",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			semconv.MessagingSystemKafka,
			semconv.MessagingDestinationName(p.topic),
			attribute.Int("messaging.batch.message_count", len(events)),
		),
	)
	defer span.End()

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		msg, err := p.message(ctx, e)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "encode event")
			return err
		}
		msgs = append(msgs, msg)
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "write messages")
		return fmt.Errorf("publish %d events to %s: %w", len(msgs), p.topic, err)
	}

	p.logger.DebugContext(ctx, "events published", "count", len(msgs))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func (p *KafkaPublisher) message(ctx context.Context, e event.DomainEvent) (kafka.Message, error) {
	value, err := marshalEvent(e)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode %s event %s: %w", e.EventType(), e.EventID(), err)
	}

	carrier := propagation.MapCarrier{}
	p.propagator.Inject(ctx, carrier)

	headers := make([]kafka.Header, 0, len(carrier)+1)
	headers = append(headers, kafka.Header{Key: eventTypeHeader, Value: []byte(e.EventType())})
	for _, key := range carrier.Keys() {
		headers = append(headers, kafka.Header{Key: key, Value: []byte(carrier.Get(key))})
	}

	return kafka.Message{
		Key:     []byte(e.AggregateID().String()),
		Value:   value,
		Headers: headers,
		Time:    e.OccurredAt(),
	}, nil
}
