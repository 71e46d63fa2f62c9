package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	loadReconciliationJob *LoadReconciliationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(reconciler LoadReconciler, logger *slog.Logger) *JobManager {
	return &JobManager{
		loadReconciliationJob: NewLoadReconciliationJob(reconciler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.loadReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start load reconciliation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.loadReconciliationJob.Stop()
}
