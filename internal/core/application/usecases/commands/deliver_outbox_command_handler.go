package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"laundry/internal/core/domain/model/outbox"
	"laundry/internal/core/ports"
)

// DeliverOutboxCommandHandler hands pending outbox messages to the
// notification sender or the event publisher.
//
// Delivery is at least once: a message is marked SENT only after its channel
// accepted it. A failed attempt is logged and counted, and the message is
// retried on the next run until the attempt limit marks it FAILED. Delivery
// failures never reach the transition that queued the message.
type DeliverOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	sender     ports.NotificationSender
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewDeliverOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	sender ports.NotificationSender,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) DeliverOutboxCommandHandler {
	return DeliverOutboxCommandHandler{
		uowFactory: uowFactory,
		sender:     sender,
		publisher:  publisher,
		logger:     logger.With("component", "DeliverOutboxCommandHandler"),
	}
}

// Handle processes one batch. It only returns an error for storage failures.
func (h DeliverOutboxCommandHandler) Handle(ctx context.Context, cmd DeliverOutboxCommand) error {
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

	outboxRepo := uow.OutboxRepository()
	messages, err := outboxRepo.GetPending(ctx, cmd.BatchSize())
	if err != nil {
		return err
	}

	if len(messages) == 0 {
		return nil
	}

	var sent, failed int
	for _, msg := range messages {
		now := time.Now().UTC()
		if deliverErr := h.deliver(ctx, msg); deliverErr != nil {
			msg.MarkAttemptFailed(deliverErr, cmd.MaxAttempts(), now)
			failed++
			h.logger.Warn("outbox message delivery failed",
				"message_id", msg.ID().String(),
				"kind", string(msg.Kind()),
				"aggregate_id", msg.AggregateID().String(),
				"attempts", msg.Attempts(),
				"state", string(msg.State()),
				"error", deliverErr)
		} else {
			msg.MarkSent(now)
			sent++
		}

		if err = outboxRepo.Update(ctx, msg); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info("outbox batch processed", "sent", sent, "failed", failed)
	return nil
}

func (h DeliverOutboxCommandHandler) deliver(ctx context.Context, msg *outbox.Message) error {
	switch msg.Kind() {
	case outbox.KindCustomerNotification:
		n, err := outbox.DecodeNotification(msg)
		if err != nil {
			return err
		}
		return h.sender.Send(ctx, n)
	case outbox.KindOrderStatusChanged:
		return h.publisher.Publish(ctx, msg.AggregateID().String(), msg.Payload())
	default:
		return fmt.Errorf("no delivery channel for outbox kind %q", msg.Kind())
	}
}
