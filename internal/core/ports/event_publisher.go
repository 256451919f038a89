package ports

import (
	"context"
)

// EventPublisher sends a notification to topic. Delivery is best effort and
// at most once: implementations log failures instead of returning them, and
// consumers reconcile against the stored record.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload any)
}
