package jobs

import (
	"context"
	"log/slog"

	"supply/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockAlertJob periodically scans the stock ledger and logs every row
// at or below its alert threshold so operations can replenish before
// franchises start hitting reservation failures.
type LowStockAlertJob struct {
	handler queries.LowStockQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLowStockAlertJob creates a job that reports nearly exhausted stock.
// Runs at the top of every hour.
func NewLowStockAlertJob(handler queries.LowStockQueryHandler, logger *slog.Logger) *LowStockAlertJob {
	return &LowStockAlertJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "low_stock_alert_job"),
	}
}

// Start begins the hourly low-stock scan.
func (j *LowStockAlertJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		query := queries.NewLowStockQuery()

		entries, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Low stock scan failed", "error", err)
			return
		}

		if len(entries) == 0 {
			return
		}

		j.logger.WarnContext(ctx, "Stock below alert threshold", "entries", len(entries))
		for _, entry := range entries {
			j.logger.WarnContext(ctx, "Replenishment needed",
				"product", entry.ProductName,
				"warehouse", entry.WarehouseName,
				"available", entry.Available,
				"reserved", entry.Reserved,
				"alert_threshold", entry.AlertThreshold,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock alert job started (running hourly)")
	return nil
}

// Stop stops the low-stock scan.
func (j *LowStockAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock alert job stopped")
}
