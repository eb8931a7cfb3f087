package jobs

import (
	"context"
	"log/slog"

	"bakery/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderMetricsJob logs hourly order counts per status and completed
// revenue, giving operators a trail of how the day went without a
// metrics stack.
type OrderMetricsJob struct {
	handler queries.GetOrdersSummaryQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderMetricsJob creates the hourly metrics job.
func NewOrderMetricsJob(handler queries.GetOrdersSummaryQueryHandler, logger *slog.Logger) *OrderMetricsJob {
	return &OrderMetricsJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_metrics_job"),
	}
}

// Start begins the hourly metrics run.
func (j *OrderMetricsJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()

		summary, handleErr := j.handler.Handle(ctx, queries.NewGetOrdersSummaryQuery())
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "order metrics job failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "hourly order metrics",
			"countByStatus", summary.CountByStatus,
			"completedRevenue", summary.CompletedRevenue,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "order metrics job started (running hourly)")
	return nil
}

// Stop stops the metrics job.
func (j *OrderMetricsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "order metrics job stopped")
}
