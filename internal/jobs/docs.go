// Package jobs provides scheduled background tasks for the order management system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. ScheduledReleaseJob - Runs every 30 seconds to release scheduled orders whose time has arrived
// 2. PositionBroadcastJob - Runs every 5 seconds to publish available captain positions for live maps
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(releaseHandler, broadcastHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Both jobs log failures and keep their schedule; one failed tick never stops the job
// - Failed job starts will stop any already running jobs
package jobs
