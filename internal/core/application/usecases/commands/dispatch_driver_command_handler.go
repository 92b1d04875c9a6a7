package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/assignment"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
)

// DispatchDriverCommandHandler creates a driver assignment and moves the
// order to PICKUP_ASSIGNED or DELIVERY_ASSIGNED.
//
// Re-dispatch after PICKUP_FAILED or DELIVERY_FAILED goes through the same
// path: the failed assignment is terminal, so a fresh record is created.
type DispatchDriverCommandHandler struct {
	uowFactory UoWFactory
	validator  services.TransitionValidator
	dispatcher services.EffectDispatcher
}

func NewDispatchDriverCommandHandler(uowFactory UoWFactory) DispatchDriverCommandHandler {
	return DispatchDriverCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewTransitionValidator(),
		dispatcher: services.NewEffectDispatcher(),
	}
}

// Handle returns the id of the new assignment.
func (h DispatchDriverCommandHandler) Handle(ctx context.Context, cmd DispatchDriverCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	target := order.PickupAssigned
	if cmd.Kind() == assignment.Delivery {
		target = order.DeliveryAssigned
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	assignmentRepo := uow.AssignmentRepository()

	current, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	observed := current.Status()
	if err = h.validator.Validate(services.TransitionRequest{
		Current:   observed,
		Requested: target,
		Actor:     cmd.By(),
	}); err != nil {
		return kernel.UUID{}, err
	}

	existing, err := ignoreNotFound(assignmentRepo.GetActive(ctx, current.ID(), cmd.Kind()))
	if err != nil {
		return kernel.UUID{}, err
	}
	if existing != nil {
		return kernel.UUID{}, assignment.ErrActiveAssignmentExists
	}

	now := time.Now().UTC()
	dispatched, err := assignment.NewAssignment(kernel.NewUUID(), current.ID(), cmd.DriverID(), cmd.Kind(), cmd.Notes(), now)
	if err != nil {
		return kernel.UUID{}, err
	}

	effects := h.dispatcher.Dispatch(current, observed, target)
	if err = current.ChangeStatus(target, now); err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.CompareAndSetStatus(ctx, current, observed); err != nil {
		return kernel.UUID{}, err
	}

	if err = assignmentRepo.Add(ctx, dispatched); err != nil {
		return kernel.UUID{}, err
	}

	change, err := order.NewStatusChange(current.ID(), observed, target, cmd.By(), cmd.Notes(), now)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = recordStatusChange(ctx, uow, current, change, effects.Notify, now); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return dispatched.ID(), nil
}
