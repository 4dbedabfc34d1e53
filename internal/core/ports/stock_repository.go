package ports

import (
	"context"

	"supply/internal/core/domain/model/kernel"
	"supply/internal/core/domain/model/stock"
)

// StockRepository defines the persistence contract for the stock ledger.
type StockRepository interface {
	// Add persists a new ledger entry.
	Add(ctx context.Context, entry *stock.Entry) error

	// Update persists mutated counters of an existing entry.
	Update(ctx context.Context, entry *stock.Entry) error

	// Get retrieves a single ledger entry without locking it.
	Get(ctx context.Context, key stock.Key) (*stock.Entry, error)

	// GetForUpdate retrieves the entries for the given keys while holding
	// row locks until the surrounding transaction ends. Implementations
	// must acquire the locks in canonical key order (stock.SortKeys)
	// regardless of the order keys are passed in, so that concurrent
	// multi-key reservations cannot deadlock. A missing key fails with an
	// errs.ObjectNotFoundError.
	GetForUpdate(ctx context.Context, keys []stock.Key) ([]*stock.Entry, error)

	// GetAllByWarehouse retrieves every entry of a warehouse that has
	// units available.
	GetAllByWarehouse(ctx context.Context, warehouseID kernel.UUID) ([]*stock.Entry, error)

	// GetAllBelowThreshold retrieves every entry whose availability has
	// dropped to or below its alert threshold.
	GetAllBelowThreshold(ctx context.Context) ([]*stock.Entry, error)
}
