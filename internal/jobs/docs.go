// Package jobs provides scheduled background tasks for the logistic portal.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the portal.
//
// # Available Jobs
//
// 1. ErpSyncJob - Periodically pulls open purchase orders from the upstream
// ERPNext system and reconciles them against local storage.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(syncHandler, "@every 15m", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sync schedule is configuration-driven (ERP_SYNC_SCHEDULE); it accepts
// standard five-field cron expressions or descriptors like "@every 15m".
//
// # Error Handling
//
// Sync failures are logged and retried on the next tick; a failed run never
// stops the scheduler. Failed job starts will stop any already running jobs.
package jobs
