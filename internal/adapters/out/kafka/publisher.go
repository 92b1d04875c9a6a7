// Package kafka publishes order events to Kafka.
package kafka

import (
	"context"
	"fmt"
	"time"

	"laundry/internal/pkg/errs"

	"github.com/IBM/sarama"
)

// SaramaPublisher implements ports.EventPublisher with a synchronous producer,
// so a publish only succeeds once the broker has acknowledged the message.
type SaramaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewSaramaPublisher connects a producer to brokers.
func NewSaramaPublisher(brokers []string, topic string) (*SaramaPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return NewSaramaPublisherWithProducer(producer, topic)
}

func NewSaramaPublisherWithProducer(producer sarama.SyncProducer, topic string) (*SaramaPublisher, error) {
	if producer == nil {
		return nil, errs.NewValueIsRequiredError("producer")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}
	return &SaramaPublisher{producer: producer, topic: topic}, nil
}

// Publish sends payload keyed by key, so events of one order stay on one
// partition and keep their order.
func (p *SaramaPublisher) Publish(ctx context.Context, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}

	return nil
}

func (p *SaramaPublisher) Close() error {
	return p.producer.Close()
}
