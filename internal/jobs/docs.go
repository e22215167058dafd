// Package jobs provides scheduled background tasks for the order intake
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DailyDispatchJob - Runs once per day at the dispatch cutoff to aggregate
// the day's submissions and hand the summary to fulfillment.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatchJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job's cron expression is configurable; the default
// "0 0 18 * * *" fires at 18:00 local time, the campus dispatch cutoff.
//
// # Error Handling
//
// Dispatch failures are logged and retried on the next scheduled run; a
// failed day can also be replayed on demand through the dispatch query
// endpoint.
package jobs
