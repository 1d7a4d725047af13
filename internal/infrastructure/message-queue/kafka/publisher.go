package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/alimikegami/e-commerce/internal/dto"
	"github.com/alimikegami/e-commerce/internal/infrastructure/metrics"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
)

const maxRetries = 3

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event dto.Event) error
}

type KafkaEventPublisher struct {
	writer  MessageWriter
	backoff time.Duration
}

func CreateEventPublisher(writer MessageWriter, backoff time.Duration) *KafkaEventPublisher {
	return &KafkaEventPublisher{writer: writer, backoff: backoff}
}

// Publish writes the event keyed by its product id so that every command for
// one product lands on the same partition.
func (p *KafkaEventPublisher) Publish(ctx context.Context, topic string, event dto.Event) error {
	jsonMsg, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal Kafka message: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(strconv.Itoa(event.Key)),
		Value: jsonMsg,
		Headers: []kafka.Header{
			{Key: "eventType", Value: []byte(event.EventType)},
			{Key: "eventId", Value: []byte(event.EventID)},
		},
	}
	otel.GetTextMapPropagator().Inject(ctx, headerCarrier{headers: &msg.Headers})

	err = writeWithRetry(ctx, p.writer, msg, p.backoff)
	if err != nil {
		metrics.EventsPublished.WithLabelValues(topic, "failed").Inc()
		return err
	}

	metrics.EventsPublished.WithLabelValues(topic, "ok").Inc()
	log.Ctx(ctx).Debug().Str("component", "Publish").Str("topic", topic).Str("eventType", string(event.EventType)).Str("eventId", event.EventID).Int("key", event.Key).Msg("event published")
	return nil
}

func writeWithRetry(ctx context.Context, writer MessageWriter, msg kafka.Message, backoff time.Duration) (err error) {
	for i := 0; i < maxRetries; i++ {
		err = writer.WriteMessages(ctx, msg)
		if err == nil {
			return nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "Publish").Str("topic", msg.Topic).Int("attempt", i+1).Msg("")

		if i == maxRetries-1 {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("failed to write Kafka message after %d attempts: %w", i+1, ctx.Err())
		case <-time.After(backoff * time.Duration(i+1)):
		}
	}

	return fmt.Errorf("failed to write Kafka message after %d attempts: %w", maxRetries, err)
}
