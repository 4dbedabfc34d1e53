package queries

import (
	"context"

	"supply/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LowStockQueryHandler retrieves ledger rows at or below their alert
// threshold. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type LowStockQueryHandler struct {
	db *gorm.DB
}

// NewLowStockQueryHandler creates a handler for low-stock retrieval queries.
// Requires a GORM database connection for query execution.
func NewLowStockQueryHandler(db *gorm.DB) LowStockQueryHandler {
	return LowStockQueryHandler{db: db}
}

// Handle executes the low-stock query.
// The emptiest rows come first so replenishment can triage.
func (h LowStockQueryHandler) Handle(
	ctx context.Context,
	query LowStockQuery,
) ([]LowStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]LowStockQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.product_id,
			s.warehouse_id,
			p.name,
			w.name,
			s.available,
			s.reserved,
			s.alert_threshold
		FROM stock_entries s
		JOIN products p ON p.id = s.product_id
		JOIN warehouses w ON w.id = s.warehouse_id
		WHERE s.available <= s.alert_threshold
		ORDER BY s.available, p.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry LowStockQueryResponse
		var productID, warehouseID uuid.UUID

		err = rows.Scan(
			&productID,
			&warehouseID,
			&entry.ProductName,
			&entry.WarehouseName,
			&entry.Available,
			&entry.Reserved,
			&entry.AlertThreshold,
		)
		if err != nil {
			return nil, err
		}

		entry.ProductID, err = kernel.UUIDFromBytes(productID[:])
		if err != nil {
			return nil, err
		}
		entry.WarehouseID, err = kernel.UUIDFromBytes(warehouseID[:])
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
