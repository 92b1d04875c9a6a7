package queries

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery lists orders that have not reached a terminal status.
// Staff see every order, customers only their own.
//
// Example:
//
//	ready := order.ReadyForDelivery
//	query, err := NewGetActiveOrdersQuery(viewer, &ready)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetActiveOrdersQuery struct {
	viewer actor.Actor
	status *order.Status
	guard  guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates the query. A nil status lists every
// non-terminal order; a terminal status is rejected because it can never match.
func NewGetActiveOrdersQuery(viewer actor.Actor, status *order.Status) (GetActiveOrdersQuery, error) {
	q := GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(setViewer(&q.viewer, viewer), q.setStatus(status)); err != nil {
		return GetActiveOrdersQuery{}, err
	}

	return q, nil
}

func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

func (q GetActiveOrdersQuery) Viewer() actor.Actor {
	return q.viewer
}

// Status returns the filter, if any.
func (q GetActiveOrdersQuery) Status() (order.Status, bool) {
	if q.status == nil {
		return order.Unknown, false
	}
	return *q.status, true
}

func (q *GetActiveOrdersQuery) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}
	if status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s is terminal", status))
	}
	s := *status
	q.status = &s
	return nil
}

// OrderSummary is one row of the active orders list.
type OrderSummary struct {
	ID                  kernel.UUID
	Number              string
	CustomerID          kernel.UUID
	Status              order.Status
	PaymentStatus       order.PaymentStatus
	InvoiceUnlocked     bool
	InvoiceGenerated    bool
	PickupWindowStart   time.Time
	DeliveryWindowStart time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
