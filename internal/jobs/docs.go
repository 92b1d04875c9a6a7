// Package jobs provides scheduled background tasks for the laundry service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds).
//
// # Available Jobs
//
//  1. OutboxDeliveryJob - hands pending outbox messages to the e-mail sender
//     and the order event publisher (default: every five seconds)
//
// # Usage
//
//	job := jobs.NewOutboxDeliveryJob(deliverOutboxHandler, cmd, "*/5 * * * * *", logger)
//	jobManager := jobs.NewJobManager(job)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Overlapping runs are skipped, so a slow broker never stacks delivery passes.
// Every message row is locked with SKIP LOCKED, so several service instances
// may run the job at once.
package jobs
