package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// LoadReconciler rebuilds the per-vehicle load counters from the active
// assignments, the source of truth.
type LoadReconciler interface {
	Reconcile(ctx context.Context) error
}

// LoadReconciliationJob periodically recomputes every vehicle's load from
// its active assignments. The counters are maintained transactionally by
// the assignment commands, so the job is a safety net against drift from
// manual data fixes or partial migrations, not part of the hot path.
type LoadReconciliationJob struct {
	reconciler LoadReconciler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewLoadReconciliationJob creates a new job for reconciling vehicle loads.
func NewLoadReconciliationJob(reconciler LoadReconciler, logger *slog.Logger) *LoadReconciliationJob {
	return &LoadReconciliationJob{
		reconciler: reconciler,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "load_reconciliation_job"),
	}
}

// Start begins the load reconciliation job to run at the top of every minute.
func (j *LoadReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		if err := j.reconciler.Reconcile(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Load reconciliation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Load reconciliation job started (running every minute)")
	return nil
}

// Stop stops the load reconciliation job.
func (j *LoadReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Load reconciliation job stopped")
}
