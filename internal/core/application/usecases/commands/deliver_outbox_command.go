package commands

import (
	"errors"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrDeliverOutboxCommandIsNotConstructed = errors.New(
	"DeliverOutboxCommand must be created via NewDeliverOutboxCommand constructor",
)

// DeliverOutboxCommand triggers one delivery run over pending outbox messages.
//
// Example:
//
//	cmd, _ := NewDeliverOutboxCommand(50, 5)
//	handler := NewDeliverOutboxCommandHandler(uowFactory, sender, publisher, logger)
//
//	// Run periodically from a cron job
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    logger.Error("outbox delivery failed", "error", err)
//	}
type DeliverOutboxCommand struct { //nolint:recvcheck //using for validation
	batchSize   int
	maxAttempts int

	guard guard.ConstructorGuard
}

// NewDeliverOutboxCommand takes the number of messages handled per run and
// the attempts after which a message is marked FAILED.
func NewDeliverOutboxCommand(batchSize, maxAttempts int) (DeliverOutboxCommand, error) {
	cmd := DeliverOutboxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchSize(batchSize),
		cmd.setMaxAttempts(maxAttempts),
	); err != nil {
		return DeliverOutboxCommand{}, err
	}

	return cmd, nil
}

func (c DeliverOutboxCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOutboxCommandIsNotConstructed)
}

func (c DeliverOutboxCommand) BatchSize() int {
	return c.batchSize
}

func (c DeliverOutboxCommand) MaxAttempts() int {
	return c.maxAttempts
}

func (c *DeliverOutboxCommand) setBatchSize(n int) error {
	if n < 1 || n > 1000 {
		return errs.NewValueIsOutOfRangeError("batch size", n, 1, 1000)
	}
	c.batchSize = n
	return nil
}

func (c *DeliverOutboxCommand) setMaxAttempts(n int) error {
	if n < 1 || n > 100 {
		return errs.NewValueIsOutOfRangeError("max attempts", n, 1, 100)
	}
	c.maxAttempts = n
	return nil
}
