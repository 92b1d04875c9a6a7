package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/outbox"
	"laundry/internal/pkg/errs"
)

// operation names a staff action that is not a status change, for
// authorization errors.
type operation string

const (
	opPlaceOrder         operation = "ORDER_PLACED"
	opGenerateInvoice    operation = "INVOICE_GENERATED"
	opResendNotification operation = "NOTIFICATION_RESENT"
)

func (o operation) String() string {
	return string(o)
}

var managerRoles = []actor.Role{actor.Admin, actor.OperationManager}

func requireRole(by actor.Actor, op operation, roles ...actor.Role) error {
	if !by.HasRole(roles...) {
		return errs.NewActorNotPermittedError(by.Role(), op, "")
	}
	return nil
}

func setActor(target *actor.Actor, by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	*target = by
	return nil
}

func setOrderID(target *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	*target = id
	return nil
}

// recordStatusChange appends the history entry of a committed change and
// queues its customer notification and its status event in the outbox.
func recordStatusChange(
	ctx context.Context,
	uow UoW,
	o *order.Order,
	change order.StatusChange,
	notify notification.Template,
	now time.Time,
) error {
	if err := uow.StatusHistoryRepository().Append(ctx, change); err != nil {
		return err
	}

	if notify != "" {
		if err := queueNotification(ctx, uow, o, notify, now); err != nil {
			return err
		}
	}

	event, err := outbox.NewStatusChangedMessage(o, change, now)
	if err != nil {
		return err
	}
	return uow.OutboxRepository().Add(ctx, event)
}

func queueNotification(ctx context.Context, uow OutboxRepoFactory, o *order.Order, template notification.Template, now time.Time) error {
	n, err := notification.ForOrder(o, template)
	if err != nil {
		return err
	}

	msg, err := outbox.NewNotificationMessage(o.ID(), n, now)
	if err != nil {
		return err
	}
	return uow.OutboxRepository().Add(ctx, msg)
}

// ignoreNotFound turns ObjectNotFound into a nil result.
func ignoreNotFound[T any](value *T, err error) (*T, error) {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	return value, err
}
