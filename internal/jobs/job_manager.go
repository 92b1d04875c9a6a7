package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	outboxDeliveryJob *OutboxDeliveryJob
}

func NewJobManager(outboxDeliveryJob *OutboxDeliveryJob) *JobManager {
	return &JobManager{
		outboxDeliveryJob: outboxDeliveryJob,
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxDeliveryJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox delivery job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.outboxDeliveryJob.Stop()
}
