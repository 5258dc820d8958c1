// Package jobs provides the scheduled background tasks of the service,
// built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// PendingOrderExpiryJob cancels orders that stayed Pending longer than the
// configured TTL. Cancellation goes through the regular transition path with
// the reason "expired: no runner accepted", so an order that a runner
// accepted in the meantime is rejected by the store and skipped.
//
// # Usage
//
//	expiry := jobs.NewPendingOrderExpiryJob(handler, cfg.OrderExpirySchedule, cfg.OrderPendingTTL, 0, logger)
//	jobManager := jobs.NewJobManager(expiry)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six field cron expressions with a leading seconds field.
// The default "0 * * * * *" runs once a minute. Overlapping runs are skipped.
package jobs
