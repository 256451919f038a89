// Package rabbitmq publishes work order events to a RabbitMQ topic exchange.
// The event topic becomes the routing key.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"deliverytracker/internal/core/ports"

	"github.com/rabbitmq/amqp091-go"
)

// Channel is the part of *amqp091.Channel the publisher uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp091.Publishing,
	) error
	Close() error
}

var _ ports.EventPublisher = (*Publisher)(nil)

type Publisher struct {
	channel  Channel
	exchange string
	logger   *slog.Logger
}

// Dial connects to url and opens a channel. The caller closes the
// connection after the publisher.
func Dial(url string) (*amqp091.Connection, *amqp091.Channel, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}
	return conn, ch, nil
}

// NewPublisher declares a durable topic exchange and returns a publisher
// bound to it.
func NewPublisher(channel Channel, exchange string, logger *slog.Logger) (*Publisher, error) {
	if exchange == "" {
		return nil, errors.New("rabbitmq exchange name is empty")
	}
	if err := channel.ExchangeDeclare(exchange, amqp091.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &Publisher{
		channel:  channel,
		exchange: exchange,
		logger:   logger.With("component", "rabbitmq_publisher", "exchange", exchange),
	}, nil
}

// Publish implements ports.EventPublisher. Failures are logged.
func (p *Publisher) Publish(ctx context.Context, topic string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to marshal event", "topic", topic, "error", err)
		return
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, topic, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to publish event", "topic", topic, "error", err)
		return
	}
	p.logger.DebugContext(ctx, "Event published", "topic", topic)
}

func (p *Publisher) Close() error {
	return p.channel.Close()
}
