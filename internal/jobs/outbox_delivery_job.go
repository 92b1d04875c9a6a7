package jobs

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOutboxSchedule runs delivery every five seconds.
const DefaultOutboxSchedule = "*/5 * * * * *"

type OutboxDeliveryHandler interface {
	Handle(ctx context.Context, cmd commands.DeliverOutboxCommand) error
}

// OutboxDeliveryJob drains pending outbox messages on a cron schedule.
type OutboxDeliveryJob struct {
	handler  OutboxDeliveryHandler
	cmd      commands.DeliverOutboxCommand
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOutboxDeliveryJob creates the job. schedule is a six-field cron
// expression with seconds; overlapping runs are skipped.
func NewOutboxDeliveryJob(
	handler OutboxDeliveryHandler,
	cmd commands.DeliverOutboxCommand,
	schedule string,
	logger *slog.Logger,
) *OutboxDeliveryJob {
	if schedule == "" {
		schedule = DefaultOutboxSchedule
	}

	logger = logger.With("component", "outbox_delivery_job")
	return &OutboxDeliveryJob{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		timeout:  30 * time.Second,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger,
	}
}

// Start schedules the job and starts the cron runner.
func (j *OutboxDeliveryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox delivery job started", "schedule", j.schedule)
	return nil
}

// Run performs one delivery pass.
func (j *OutboxDeliveryJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if err := j.handler.Handle(ctx, j.cmd); err != nil {
		j.logger.ErrorContext(ctx, "Outbox delivery job failed", "error", err)
	}
}

// Stop stops scheduling and waits for a running pass to finish.
func (j *OutboxDeliveryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox delivery job stopped")
}
