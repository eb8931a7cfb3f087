package jobs

import (
	"fmt"
	"log/slog"

	"bakery/internal/core/application/orderstore"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	snapshotBackupJob *SnapshotBackupJob
	orderMetricsJob   *OrderMetricsJob
}

// NewJobManager creates a job manager with all required jobs wired up.
func NewJobManager(
	store *orderstore.Store,
	saver ports.SnapshotSaver,
	summaryHandler queries.GetOrdersSummaryQueryHandler,
	backupIntervalMinutes int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		snapshotBackupJob: NewSnapshotBackupJob(store, saver, backupIntervalMinutes, logger),
		orderMetricsJob:   NewOrderMetricsJob(summaryHandler, logger),
	}
}

// StartAll starts all scheduled jobs. Returns an error if any job fails
// to start.
func (jm *JobManager) StartAll() error {
	if err := jm.snapshotBackupJob.Start(); err != nil {
		return fmt.Errorf("failed to start snapshot backup job: %w", err)
	}

	if err := jm.orderMetricsJob.Start(); err != nil {
		jm.snapshotBackupJob.Stop()
		return fmt.Errorf("failed to start order metrics job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderMetricsJob.Stop()
	jm.snapshotBackupJob.Stop()
}
