package ports

import (
	"context"

	"laundry/internal/core/domain/model/outbox"
)

// OutboxRepository stores side effects written in the same transaction as the
// state change that caused them.
type OutboxRepository interface {
	// Add queues a message in PENDING state.
	Add(ctx context.Context, message *outbox.Message) error

	// GetPending locks up to limit PENDING messages, oldest first, skipping
	// rows already locked by another delivery run.
	GetPending(ctx context.Context, limit int) ([]*outbox.Message, error)

	// Update persists attempts, state, last error and processed at.
	Update(ctx context.Context, message *outbox.Message) error
}
