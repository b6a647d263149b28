// Package jobs provides scheduled background tasks for the restaurant
// back office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ShiftCloseJob - Settles the previous day's shift after midnight:
// aggregates the day's orders into the daily summary and purges the order
// rows.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(closeShiftHandler, systemActor, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A day already closed by an operator is an expected scenario and is only
// logged at info level; every other failure is logged as an error and
// retried on the next scheduled run.
package jobs
