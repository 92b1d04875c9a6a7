package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/services"
)

// ResendNotificationCommandHandler re-dispatches the effects of an order's
// current status: a fresh customer notification every time, plus the
// invoice unlock if it was somehow missed.
type ResendNotificationCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.EffectDispatcher
}

func NewResendNotificationCommandHandler(uowFactory UoWFactory) ResendNotificationCommandHandler {
	return ResendNotificationCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewEffectDispatcher(),
	}
}

func (h ResendNotificationCommandHandler) Handle(ctx context.Context, cmd ResendNotificationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := requireRole(cmd.By(), opResendNotification, managerRoles...); err != nil {
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
	current, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	effects := h.dispatcher.Redispatch(current)

	if effects.UnlockInvoice {
		if _, err = current.UnlockInvoice(now); err != nil {
			return err
		}
		if err = orderRepo.CompareAndSetStatus(ctx, current, current.Status()); err != nil {
			return err
		}
	}

	if err = queueNotification(ctx, uow, current, effects.Notify, now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
