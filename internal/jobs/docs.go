// Package jobs provides scheduled background tasks for the delivery service.
//
// Jobs use github.com/robfig/cron/v3 with the seconds field enabled and log
// through log/slog.
//
// # Available Jobs
//
//  1. DeliveryStatsJob - logs the number of stored deliveries, every minute by default
//
// # Usage
//
//	jobManager := jobs.NewJobManager(listDeliveriesHandler, "@every 30s", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
