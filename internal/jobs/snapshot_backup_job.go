package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"bakery/internal/core/application/orderstore"
	"bakery/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// SnapshotBackupJob periodically writes the full order collection to
// the database. The store already snapshots after every mutation; this
// job covers sessions that sit idle for long stretches.
type SnapshotBackupJob struct {
	store    *orderstore.Store
	saver    ports.SnapshotSaver
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewSnapshotBackupJob creates a backup job running on the given
// interval in minutes.
func NewSnapshotBackupJob(
	store *orderstore.Store,
	saver ports.SnapshotSaver,
	intervalMinutes int,
	logger *slog.Logger,
) *SnapshotBackupJob {
	return &SnapshotBackupJob{
		store:    store,
		saver:    saver,
		cron:     cron.New(),
		schedule: fmt.Sprintf("@every %dm", intervalMinutes),
		logger:   logger.With("component", "snapshot_backup_job"),
	}
}

// Start begins the periodic backup.
func (j *SnapshotBackupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		result, saveErr := j.saver.SaveSnapshot(ctx, j.store.Orders())
		if saveErr != nil {
			j.logger.ErrorContext(ctx, "scheduled snapshot backup failed", "error", saveErr)
			return
		}
		if result.Warning != "" {
			j.logger.WarnContext(ctx, "scheduled snapshot backup warned", "warning", result.Warning)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "snapshot backup job started", "schedule", j.schedule)
	return nil
}

// Stop stops the backup job.
func (j *SnapshotBackupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "snapshot backup job stopped")
}
