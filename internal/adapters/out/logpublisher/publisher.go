// Package logpublisher writes events to the application log. It stands in
// for a broker in local runs and tests.
package logpublisher

import (
	"context"
	"log/slog"

	"deliverytracker/internal/core/ports"
)

var _ ports.EventPublisher = (*Publisher)(nil)

type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "log_publisher")}
}

func (p *Publisher) Publish(ctx context.Context, topic string, payload any) {
	p.logger.InfoContext(ctx, "Event", "topic", topic, "payload", payload)
}
