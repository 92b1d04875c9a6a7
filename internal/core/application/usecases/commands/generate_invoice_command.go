package commands

import (
	"errors"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGenerateInvoiceCommandIsNotConstructed = errors.New(
	"GenerateInvoiceCommand must be created via NewGenerateInvoiceCommand constructor",
)

// GenerateInvoiceCommand issues the customer invoice of an unlocked order.
type GenerateInvoiceCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	by      actor.Actor

	guard guard.ConstructorGuard
}

func NewGenerateInvoiceCommand(orderID kernel.UUID, by actor.Actor) (GenerateInvoiceCommand, error) {
	cmd := GenerateInvoiceCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		setOrderID(&cmd.orderID, orderID),
		setActor(&cmd.by, by),
	); err != nil {
		return GenerateInvoiceCommand{}, err
	}

	return cmd, nil
}

func (c GenerateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrGenerateInvoiceCommandIsNotConstructed)
}

func (c GenerateInvoiceCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c GenerateInvoiceCommand) By() actor.Actor {
	return c.by
}
