package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/notification"
)

// GenerateInvoiceCommandHandler flips invoiceGenerated once per order and
// queues the invoice_generated notification.
type GenerateInvoiceCommandHandler struct {
	uowFactory UoWFactory
}

func NewGenerateInvoiceCommandHandler(uowFactory UoWFactory) GenerateInvoiceCommandHandler {
	return GenerateInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with order.ErrInvoiceLocked before PROCESSING_COMPLETED, with
// order.ErrInvoiceAlreadyGenerated on a second call and with
// errs.ErrOrderAlreadyTerminal for cancelled or refunded orders.
func (h GenerateInvoiceCommandHandler) Handle(ctx context.Context, cmd GenerateInvoiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := requireRole(cmd.By(), opGenerateInvoice, managerRoles...); err != nil {
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
	observed := current.Status()
	if err = current.GenerateInvoice(now); err != nil {
		return err
	}

	if err = orderRepo.CompareAndSetStatus(ctx, current, observed); err != nil {
		return err
	}

	if err = queueNotification(ctx, uow, current, notification.InvoiceGenerated, now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
