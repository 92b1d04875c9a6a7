package ports

import (
	"context"

	"laundry/internal/core/domain/model/notification"
)

// NotificationSender delivers a customer notification. Failures are retried
// by the outbox job and never affect the transition that queued it.
type NotificationSender interface {
	Send(ctx context.Context, n notification.Notification) error
}

// EventPublisher publishes an order event to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
}
