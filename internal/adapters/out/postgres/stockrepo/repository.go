package stockrepo

import (
	"context"
	"errors"
	"fmt"

	"supply/internal/core/domain/model/kernel"
	"supply/internal/core/domain/model/stock"
	"supply/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockRepository implements StockRepository using GORM.
type GormStockRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB, tracker aggregateTracker) *GormStockRepository {
	return &GormStockRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new ledger entry to the database.
func (r *GormStockRepository) Add(ctx context.Context, entry *stock.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.Key().ProductID, entry)
	return nil
}

// Update saves the mutated counters of an existing ledger entry.
func (r *GormStockRepository) Update(ctx context.Context, entry *stock.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	result := r.db.WithContext(ctx).
		Model(&EntryDTO{}).
		Where("product_id = ? AND warehouse_id = ?", dto.ProductID, dto.WarehouseID).
		Updates(map[string]any{
			"available":       dto.Available,
			"reserved":        dto.Reserved,
			"alert_threshold": dto.AlertThreshold,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("stock entry", describeKey(entry.Key()))
	}

	r.tracker.TrackAggregate(entry.Key().ProductID, entry)
	return nil
}

// Get retrieves a single ledger entry without locking it.
func (r *GormStockRepository) Get(ctx context.Context, key stock.Key) (*stock.Entry, error) {
	var dto EntryDTO
	err := r.db.WithContext(ctx).
		First(&dto, "product_id = ? AND warehouse_id = ?", key.ProductID.Bytes(), key.WarehouseID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock entry", describeKey(key))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves the entries for the given keys under FOR UPDATE
// row locks. The keys are locked one by one in canonical order
// (stock.SortKeys) regardless of input order, so two transactions
// reserving overlapping key sets always queue instead of deadlocking.
//
// The returned slice follows the canonical order, not the input order.
func (r *GormStockRepository) GetForUpdate(ctx context.Context, keys []stock.Key) ([]*stock.Entry, error) {
	sorted := make([]stock.Key, len(keys))
	copy(sorted, keys)
	stock.SortKeys(sorted)

	entries := make([]*stock.Entry, 0, len(sorted))
	for _, key := range sorted {
		var dto EntryDTO
		err := r.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&dto, "product_id = ? AND warehouse_id = ?", key.ProductID.Bytes(), key.WarehouseID.Bytes()).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errs.NewObjectNotFoundError("stock entry", describeKey(key))
			}
			return nil, err
		}

		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// GetAllByWarehouse retrieves every entry of a warehouse with units available.
func (r *GormStockRepository) GetAllByWarehouse(ctx context.Context, warehouseID kernel.UUID) ([]*stock.Entry, error) {
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "warehouse_id = ? AND available > 0", warehouseID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllBelowThreshold retrieves every entry whose availability has dropped
// to or below its alert threshold.
func (r *GormStockRepository) GetAllBelowThreshold(ctx context.Context) ([]*stock.Entry, error) {
	var dtos []EntryDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "available <= alert_threshold").Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []EntryDTO) ([]*stock.Entry, error) {
	entries := make([]*stock.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func describeKey(key stock.Key) string {
	return fmt.Sprintf("product %s in warehouse %s", key.ProductID, key.WarehouseID)
}
