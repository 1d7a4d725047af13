package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alimikegami/e-commerce/internal/dto"
	"github.com/alimikegami/e-commerce/internal/infrastructure/metrics"
	"github.com/alimikegami/e-commerce/pkg/errs"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventHandler applies one command to the local store.
type EventHandler func(ctx context.Context, event dto.Event) error

type EventConsumer struct {
	reader      MessageReader
	deadLetter  MessageWriter
	handler     EventHandler
	topic       string
	maxAttempts int
	backoff     time.Duration
	tracer      trace.Tracer
}

func CreateEventConsumer(reader MessageReader, deadLetter MessageWriter, topic string, handler EventHandler, maxAttempts int, backoff time.Duration) *EventConsumer {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &EventConsumer{
		reader:      reader,
		deadLetter:  deadLetter,
		handler:     handler,
		topic:       topic,
		maxAttempts: maxAttempts,
		backoff:     backoff,
		tracer:      otel.Tracer("event-consumer"),
	}
}

// ConsumeEvent runs until ctx is cancelled or the reader is closed. A message
// is committed only once it has been applied, recognised as a duplicate, or
// moved to the dead letter topic.
func (c *EventConsumer) ConsumeEvent(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}
			log.Ctx(ctx).Error().Err(err).Str("component", "ConsumeEvent").Str("topic", c.topic).Msg("")
			if !sleep(ctx, c.backoff) {
				return nil
			}
			continue
		}

		done, err := c.process(ctx, msg)
		if err != nil {
			return err
		}
		if !done {
			return nil
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Ctx(ctx).Error().Err(err).Str("component", "ConsumeEvent").Str("topic", c.topic).Int64("offset", msg.Offset).Msg("failed to commit offset")
		}
	}
}

// process reports done=false when ctx ended before the message was settled.
func (c *EventConsumer) process(ctx context.Context, msg kafka.Message) (done bool, err error) {
	ctx = otel.GetTextMapPropagator().Extract(ctx, headerCarrier{headers: &msg.Headers})
	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("consume %s", c.topic), trace.WithSpanKind(trace.SpanKindConsumer))
	defer span.End()

	var event dto.Event
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ConsumeEvent").Str("topic", c.topic).Int64("offset", msg.Offset).Msg("undecodable message")
		return c.sendToDeadLetter(ctx, msg, "", err)
	}

	span.SetAttributes(
		attribute.String("event.id", event.EventID),
		attribute.String("event.type", string(event.EventType)),
		attribute.Int("event.key", event.Key),
	)
	log.Ctx(ctx).Debug().Str("component", "ConsumeEvent").Str("topic", c.topic).Str("eventType", string(event.EventType)).Str("eventId", event.EventID).Int("key", event.Key).Msg("received event")

	for attempt := 1; ; attempt++ {
		err := c.handler(ctx, event)
		switch {
		case err == nil:
			metrics.EventsConsumed.WithLabelValues(c.topic, "applied").Inc()
			return true, nil
		case errors.Is(err, errs.ErrDuplicateKey):
			log.Ctx(ctx).Info().Str("component", "ConsumeEvent").Str("topic", c.topic).Str("eventId", event.EventID).Int("key", event.Key).Msg(err.Error())
			metrics.EventsConsumed.WithLabelValues(c.topic, "duplicate").Inc()
			return true, nil
		case errors.Is(err, errs.ErrInvalidInput), attempt >= c.maxAttempts:
			return c.sendToDeadLetter(ctx, msg, event.EventID, err)
		}

		log.Ctx(ctx).Warn().Err(err).Str("component", "ConsumeEvent").Str("topic", c.topic).Str("eventId", event.EventID).Int("attempt", attempt).Msg("retrying event")
		if !sleep(ctx, c.backoff*time.Duration(attempt)) {
			return false, nil
		}
	}
}

// sendToDeadLetter keeps eventID in the x-event-id header so a replay can be
// matched with the consumer log lines of the first delivery.
func (c *EventConsumer) sendToDeadLetter(ctx context.Context, msg kafka.Message, eventID string, cause error) (bool, error) {
	headers := append([]kafka.Header{}, msg.Headers...)
	headers = append(headers,
		kafka.Header{Key: "x-original-topic", Value: []byte(msg.Topic)},
		kafka.Header{Key: "x-exception-message", Value: []byte(cause.Error())},
	)
	if eventID != "" {
		headers = append(headers, kafka.Header{Key: "x-event-id", Value: []byte(eventID)})
	}

	deadLetter := kafka.Message{
		Topic:   DeadLetterTopic(c.topic),
		Key:     msg.Key,
		Value:   msg.Value,
		Headers: headers,
	}

	if err := writeWithRetry(ctx, c.deadLetter, deadLetter, c.backoff); err != nil {
		if ctx.Err() != nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to dead-letter message at offset %d of %s: %w", msg.Offset, c.topic, err)
	}

	log.Ctx(ctx).Error().Err(cause).Str("component", "ConsumeEvent").Str("topic", c.topic).Str("eventId", eventID).Int64("offset", msg.Offset).Msg("event moved to dead letter topic")
	metrics.EventsConsumed.WithLabelValues(c.topic, "dead_lettered").Inc()
	return true, nil
}

func sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
