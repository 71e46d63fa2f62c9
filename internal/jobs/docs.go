// Package jobs provides scheduled background tasks for the booking core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path should not carry.
//
// # Available Jobs
//
// 1. LoadReconciliationJob - Runs every minute to rebuild the per-vehicle
// load counters from the active assignments
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the reconciler
//	jobManager := jobs.NewJobManager(reconciler, logger)
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
// Reconciliation failures are logged and retried on the next tick; the
// counters stay transactionally consistent in between, so a missed run is
// harmless.
package jobs
