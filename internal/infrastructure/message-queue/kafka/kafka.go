package kafka

import (
	"time"

	"github.com/alimikegami/e-commerce/config"
	"github.com/segmentio/kafka-go"
)

// CreateKafkaWriter returns a writer that is not bound to a topic; every
// message names its own.
func CreateKafkaWriter(config *config.Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(config.KafkaConfig.BrokerAddress),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
}

func CreateKafkaReader(config *config.Config, topic string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:          []string{config.KafkaConfig.BrokerAddress},
		Topic:            topic,
		GroupID:          config.KafkaConfig.ConsumerGroup,
		MinBytes:         1e3, // 1KB
		MaxBytes:         1e6, // 1MB
		MaxWait:          100 * time.Millisecond,
		ReadLagInterval:  -1,
		StartOffset:      kafka.FirstOffset,
		QueueCapacity:    1000,
		ReadBatchTimeout: 10 * time.Millisecond,
	})
}

func DeadLetterTopic(topic string) string {
	return topic + ".dlq"
}
