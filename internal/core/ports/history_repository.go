package ports

import (
	"context"

	"laundry/internal/core/domain/model/order"
)

// StatusHistoryRepository appends to the immutable status history of orders.
type StatusHistoryRepository interface {
	Append(ctx context.Context, change order.StatusChange) error
}
