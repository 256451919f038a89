// Package kafka publishes work order events to Kafka topics.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"deliverytracker/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// keyed payloads are partitioned by their key so events for one work order
// stay ordered.
type keyed interface {
	Key() string
}

var _ ports.EventPublisher = (*Publisher)(nil)

type Publisher struct {
	writer MessageWriter
	logger *slog.Logger
}

// NewWriter returns a writer that routes by message key. The topic is set
// per message.
func NewWriter(brokers ...string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
}

func NewPublisher(writer MessageWriter, logger *slog.Logger) *Publisher {
	return &Publisher{
		writer: writer,
		logger: logger.With("component", "kafka_publisher"),
	}
}

// Publish implements ports.EventPublisher. Failures are logged.
func (p *Publisher) Publish(ctx context.Context, topic string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to marshal event", "topic", topic, "error", err)
		return
	}

	msg := kafka.Message{Topic: topic, Value: body, Time: time.Now()}
	if k, ok := payload.(keyed); ok {
		msg.Key = []byte(k.Key())
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, "Failed to produce event", "topic", topic, "key", string(msg.Key), "error", err)
		return
	}
	p.logger.DebugContext(ctx, "Event produced", "topic", topic, "key", string(msg.Key))
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
