// Package jobs provides scheduled background tasks for the storefront.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(store, saver, summaryHandler, 15, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// SnapshotBackupJob re-saves the full order collection on a fixed
// interval as a safety net for idle sessions. OrderMetricsJob logs
// per-status counts and completed revenue every hour.
package jobs
