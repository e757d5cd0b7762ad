package jobs

import (
	"context"
	"log/slog"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ErpSyncJob periodically reconciles local purchase orders against the
// upstream ERP system.
type ErpSyncJob struct {
	handler  commands.SyncPurchaseOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewErpSyncJob creates a job that runs the purchase order sync on the given
// cron schedule (standard five-field cron or a descriptor like "@every 15m").
func NewErpSyncJob(
	handler commands.SyncPurchaseOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *ErpSyncJob {
	return &ErpSyncJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "erp_sync_job"),
	}
}

// Start begins the periodic ERP synchronization.
func (j *ErpSyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewSyncPurchaseOrdersCommand()

		result, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "ERP sync job failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "ERP sync completed",
			"fetched", result.Fetched,
			"created", result.Created,
			"refreshed", result.Refreshed,
			"skipped", result.Skipped,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "ERP sync job started", "schedule", j.schedule)
	return nil
}

// Stop stops the ERP sync job.
func (j *ErpSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "ERP sync job stopped")
}
