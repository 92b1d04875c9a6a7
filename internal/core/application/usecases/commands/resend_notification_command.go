package commands

import (
	"errors"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrResendNotificationCommandIsNotConstructed = errors.New(
	"ResendNotificationCommand must be created via NewResendNotificationCommand constructor",
)

// ResendNotificationCommand re-sends the notification of an order's current
// status. Re-sending is not idempotent: every call queues a new message.
type ResendNotificationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	by      actor.Actor

	guard guard.ConstructorGuard
}

func NewResendNotificationCommand(orderID kernel.UUID, by actor.Actor) (ResendNotificationCommand, error) {
	cmd := ResendNotificationCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		setOrderID(&cmd.orderID, orderID),
		setActor(&cmd.by, by),
	); err != nil {
		return ResendNotificationCommand{}, err
	}

	return cmd, nil
}

func (c ResendNotificationCommand) Validate() error {
	return c.guard.Validate(ErrResendNotificationCommandIsNotConstructed)
}

func (c ResendNotificationCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ResendNotificationCommand) By() actor.Actor {
	return c.by
}
