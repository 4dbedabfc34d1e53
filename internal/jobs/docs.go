// Package jobs provides scheduled background tasks for the supply system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the supply-ordering service.
//
// # Available Jobs
//
// 1. LowStockAlertJob - Runs hourly to report ledger rows at or below their alert threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(lowStockHandler, logger)
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
// The low-stock job uses the cron expression "0 0 * * * *": once an hour is
// fast enough for replenishment decisions without hammering the ledger.
//
// # Error Handling
//
// Scan failures are logged and swallowed; the next tick retries. A failed
// job start is returned to the caller so the process can refuse to boot.
package jobs
