package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/assignment"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// ErrDriverDispatchRequired is returned when an assignment step is requested
// as a bare status change; those statuses are entered by dispatching a driver.
var ErrDriverDispatchRequired = errors.New("assignment statuses are entered by dispatching a driver")

// ChangeOrderStatusCommandHandler runs one order transition end to end.
//
// Steps, all inside one transaction holding the order's row lock:
//  1. read the order for update and compare it with the caller-observed status
//  2. resolve the active assignment when the target is a driver handoff
//  3. validate the transition (terminal, step order, role, assignment owner)
//  4. compute side effects and reject a photo-gated handoff without a photo
//  5. apply the order and assignment transitions and the invoice unlock
//  6. compare-and-set the order, then the assignment, then store the photo
//  7. append history and queue the notification and the status event
//
// Nothing is written when any step fails. Notification and event delivery
// happen later from the outbox and cannot undo the transition.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrPhotoRequired):
//	    // ask the driver for a photo
//	case errors.Is(err, errs.ErrConcurrentModification):
//	    // re-read the order and retry
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	validator  services.TransitionValidator
	dispatcher services.EffectDispatcher
}

func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewTransitionValidator(),
		dispatcher: services.NewEffectDispatcher(),
	}
}

func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	assignmentRepo := uow.AssignmentRepository()

	current, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	observed := current.Status()
	if expected, ok := cmd.Expected(); ok && expected != observed {
		return errs.NewConcurrentModificationError("order", current.ID().String(), expected)
	}

	target := cmd.Target()
	handoff, isHandoff := services.HandoffFor(target)

	var active *assignment.DriverAssignment
	if isHandoff {
		active, err = ignoreNotFound(assignmentRepo.GetActive(ctx, current.ID(), handoff.Kind))
		if err != nil {
			return err
		}
	}

	if err = h.validator.Validate(services.TransitionRequest{
		Current:          observed,
		Requested:        target,
		Actor:            cmd.By(),
		AssignedDriverID: driverOf(active),
	}); err != nil {
		return err
	}

	if _, ok := services.DispatchKindFor(target); ok {
		return fmt.Errorf("%w: %s", ErrDriverDispatchRequired, target)
	}

	effects := h.dispatcher.Dispatch(current, observed, target)
	if effects.CapturePhoto != nil && !cmd.Evidence().Provided() {
		return errs.NewPhotoRequiredError(effects.CapturePhoto.PhotoType.String())
	}

	now := time.Now().UTC()

	var (
		photo            *assignment.Photo
		assignmentBefore assignment.Status
	)
	if active != nil {
		assignmentBefore = active.Status()
		if photo, err = active.Transition(handoff.Status, cmd.Evidence(), now); err != nil {
			return err
		}
	}

	if err = current.ChangeStatus(target, now); err != nil {
		return err
	}
	if effects.UnlockInvoice {
		if _, err = current.UnlockInvoice(now); err != nil {
			return err
		}
	}

	if err = orderRepo.CompareAndSetStatus(ctx, current, observed); err != nil {
		return err
	}

	if active != nil {
		if err = assignmentRepo.CompareAndSetStatus(ctx, active, assignmentBefore); err != nil {
			return err
		}
		if photo != nil {
			if err = assignmentRepo.AddPhoto(ctx, photo); err != nil {
				return err
			}
		}
	}

	change, err := order.NewStatusChange(current.ID(), observed, target, cmd.By(), cmd.Note(), now)
	if err != nil {
		return err
	}

	if err = recordStatusChange(ctx, uow, current, change, effects.Notify, now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func driverOf(a *assignment.DriverAssignment) *kernel.UUID {
	if a == nil {
		return nil
	}
	id := a.DriverID()
	return &id
}
