package jobs

import (
	"fmt"
	"log/slog"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	erpSyncJob *ErpSyncJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	syncHandler commands.SyncPurchaseOrdersCommandHandler,
	syncSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		erpSyncJob: NewErpSyncJob(syncHandler, syncSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.erpSyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start ERP sync job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.erpSyncJob.Stop()
}
