package queries

import (
	"errors"

	"supply/internal/core/domain/model/kernel"
	"supply/internal/pkg/guard"
)

var (
	ErrLowStockQueryIsNotConstructed = errors.New(
		"LowStockQuery must be created via NewLowStockQuery constructor",
	)
)

// LowStockQuery retrieves every ledger row at or below its alert threshold.
// Backs the replenishment job and the operations dashboard.
type LowStockQuery struct {
	guard guard.ConstructorGuard
}

// NewLowStockQuery creates a query for exhausted or nearly exhausted stock.
func NewLowStockQuery() LowStockQuery {
	return LowStockQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q LowStockQuery) Validate() error {
	return q.guard.Validate(ErrLowStockQueryIsNotConstructed)
}

// LowStockQueryResponse represents one ledger row needing replenishment.
type LowStockQueryResponse struct {
	ProductID      kernel.UUID
	WarehouseID    kernel.UUID
	ProductName    string
	WarehouseName  string
	Available      int
	Reserved       int
	AlertThreshold int
}
