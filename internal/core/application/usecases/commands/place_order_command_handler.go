package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// PlaceOrderCommandHandler creates orders in ORDER_PLACED.
//
// Customers may only place orders for themselves; back-office staff may place
// them on a customer's behalf. Drivers may not place orders.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the order, its first history entry, the order_placed
// notification and the status event in one transaction.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	by := cmd.PlacedBy()
	if err := h.authorize(by, cmd.Details()); err != nil {
		return err
	}

	now := time.Now().UTC()
	placed, err := order.NewOrder(cmd.OrderID(), cmd.Details(), now)
	if err != nil {
		return err
	}

	change, err := order.NewStatusChange(placed.ID(), order.Unknown, order.Placed, by, "", now)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return err
	}

	if err = recordStatusChange(ctx, uow, placed, change, notification.OrderPlaced, now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h PlaceOrderCommandHandler) authorize(by actor.Actor, details order.Details) error {
	switch {
	case by.Role() == actor.Customer:
		if !by.ID().IsEqual(details.CustomerID) {
			return errs.NewActorNotPermittedError(by.Role(), opPlaceOrder, "customers order for themselves only")
		}
		return nil
	case by.Role().IsStaff():
		return nil
	default:
		return errs.NewActorNotPermittedError(by.Role(), opPlaceOrder, "")
	}
}
