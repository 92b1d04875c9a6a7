// Package ports defines the contracts between the order lifecycle core and
// its infrastructure: repositories bound to a unit of work, the notification
// sender and the event publisher.
package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted.
type OrderRepository interface {
	// Add persists a newly placed order. The order number must be unique.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order without locking it.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and holds a row lock on it until the
	// surrounding transaction ends, so concurrent transitions of the same
	// order are serialized.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// CompareAndSetStatus persists the order's lifecycle state (status,
	// payment status, invoice flags, updated at) only if the stored status
	// still equals expected.
	//
	// Returns errs.ErrConcurrentModification when another writer moved the
	// order first, errs.ErrObjectNotFound when the order does not exist.
	CompareAndSetStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error
}
