// Package jobs provides scheduled background tasks for the orderflow service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderProcessingJob - Runs on the configured schedule and processes the
// order batches of a fixed list of users, one batch per user per tick.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(processHandler, userIDs, schedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A degraded batch (success=false in the BatchResult) is logged as a warning
// with its failure count; handler errors only occur for invalid commands and
// are logged as errors.
package jobs
