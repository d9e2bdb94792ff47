// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping required by the service.
//
// # Available Jobs
//
// 1. NotificationPurgeJob - Drops notifications past their retention window
// from the in-memory bus so idle clients cannot pin stale events forever.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(bus, "0 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The purge schedule uses six-field cron syntax and defaults to once per
// minute. Purging more often buys nothing: the bus also trims by capacity
// on every publish.
package jobs
