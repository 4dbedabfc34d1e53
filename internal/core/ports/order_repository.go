// Package ports defines repository interfaces for the supply domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"supply/internal/core/domain/model/kernel"
	"supply/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, guarded by
	// the aggregate's version: the update applies only if the stored row
	// still carries the version the aggregate was loaded with, and the
	// stored version is bumped on success. A version mismatch fails with
	// an errs.VersionIsInvalidError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its full line set.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate while holding a row lock
	// until the surrounding transaction ends. Lifecycle commands use it so
	// that two concurrent transitions on the same order serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByFranchise retrieves a franchise's orders, newest first.
	GetAllByFranchise(ctx context.Context, franchiseID kernel.UUID) ([]*order.Order, error)

	// NextNumber allocates the next sequential order number for the given
	// day, formatted "CMD-YYYYMMDD-NNNN". The per-day counter restarts at
	// 0001; allocation is safe under concurrent creation.
	NextNumber(ctx context.Context, day time.Time) (string, error)
}
