package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery reads the status history of one order, oldest first.
type GetOrderHistoryQuery struct {
	orderID kernel.UUID
	viewer  actor.Actor
	guard   guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(orderID kernel.UUID, viewer actor.Actor) (GetOrderHistoryQuery, error) {
	q := GetOrderHistoryQuery{guard: guard.NewConstructorGuard()}

	var idErr error
	if err := orderID.Validate(); err != nil {
		idErr = errs.NewValueIsRequiredErrorWithCause("order id", err)
	}

	if err := errors.Join(idErr, setViewer(&q.viewer, viewer)); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	q.orderID = orderID
	return q, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderHistoryQuery) Viewer() actor.Actor {
	return q.viewer
}

// StatusChangeView is one history entry. From is order.Unknown for the
// placement entry.
type StatusChangeView struct {
	From       order.Status
	To         order.Status
	ActorID    kernel.UUID
	ActorRole  actor.Role
	Note       string
	OccurredAt time.Time
}
