package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/assignment"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrDispatchDriverCommandIsNotConstructed = errors.New(
	"DispatchDriverCommand must be created via NewDispatchDriverCommand constructor",
)

// DispatchDriverCommand assigns a driver to pick up or deliver an order.
type DispatchDriverCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	by       actor.Actor
	driverID kernel.UUID
	kind     assignment.Kind
	notes    string

	guard guard.ConstructorGuard
}

func NewDispatchDriverCommand(
	orderID kernel.UUID,
	by actor.Actor,
	driverID kernel.UUID,
	kind assignment.Kind,
	notes string,
) (DispatchDriverCommand, error) {
	cmd := DispatchDriverCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setOrderID(&cmd.orderID, orderID),
		setActor(&cmd.by, by),
		cmd.setDriverID(driverID),
		cmd.setKind(kind),
	); err != nil {
		return DispatchDriverCommand{}, err
	}

	return cmd, nil
}

func (c DispatchDriverCommand) Validate() error {
	return c.guard.Validate(ErrDispatchDriverCommandIsNotConstructed)
}

func (c DispatchDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c DispatchDriverCommand) By() actor.Actor {
	return c.by
}

func (c DispatchDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c DispatchDriverCommand) Kind() assignment.Kind {
	return c.kind
}

func (c DispatchDriverCommand) Notes() string {
	return c.notes
}

func (c *DispatchDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driver id", err)
	}
	c.driverID = id
	return nil
}

func (c *DispatchDriverCommand) setKind(kind assignment.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}
