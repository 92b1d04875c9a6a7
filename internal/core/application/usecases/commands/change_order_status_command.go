package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/assignment"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand is an actor's request to move an order to a new status.
//
// Example:
//
//	observed := order.PickupInProgress
//	cmd, err := NewChangeOrderStatusCommand(orderID, driver, order.PickupCompleted, &observed,
//	    &assignment.Evidence{URL: "https://photos.example.com/p1.jpg"}, "")
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	by       actor.Actor
	target   order.Status
	expected *order.Status
	evidence *assignment.Evidence
	note     string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand builds a transition request.
//
// Parameters:
//   - expected: the status the caller last observed; when set, the request
//     fails with ErrConcurrentModification if the order has moved since
//   - evidence: the stored photo for photo-gated driver handoffs, or nil
//   - note: free text kept in the status history
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	by actor.Actor,
	target order.Status,
	expected *order.Status,
	evidence *assignment.Evidence,
	note string,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		evidence: evidence,
		note:     strings.TrimSpace(note),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setOrderID(&cmd.orderID, orderID),
		setActor(&cmd.by, by),
		cmd.setTarget(target),
		cmd.setExpected(expected),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) By() actor.Actor {
	return c.by
}

func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

// Expected returns the caller-observed status and whether one was given.
func (c ChangeOrderStatusCommand) Expected() (order.Status, bool) {
	if c.expected == nil {
		return order.Unknown, false
	}
	return *c.expected, true
}

func (c ChangeOrderStatusCommand) Evidence() *assignment.Evidence {
	return c.evidence
}

func (c ChangeOrderStatusCommand) Note() string {
	return c.note
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *ChangeOrderStatusCommand) setExpected(expected *order.Status) error {
	if expected == nil {
		return nil
	}
	if err := expected.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("expected status", err)
	}
	observed := *expected
	c.expected = &observed
	return nil
}
