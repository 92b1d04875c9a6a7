package commands

import (
	"errors"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer's new laundry order.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), customer, order.Details{
//	    CustomerID:      customer.ID(),
//	    CustomerEmail:   "sam@example.com",
//	    PickupAddress:   pickup,
//	    DeliveryAddress: pickup,
//	    PickupWindow:    pickupWindow,
//	    DeliveryWindow:  deliveryWindow,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	placedBy actor.Actor
	details  order.Details

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand checks the identifiers and the actor; the order details
// are validated by the aggregate when the command is handled.
func NewPlaceOrderCommand(orderID kernel.UUID, placedBy actor.Actor, details order.Details) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setOrderID(&cmd.orderID, orderID),
		setActor(&cmd.placedBy, placedBy),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) PlacedBy() actor.Actor {
	return c.placedBy
}

func (c PlaceOrderCommand) Details() order.Details {
	return c.details
}
