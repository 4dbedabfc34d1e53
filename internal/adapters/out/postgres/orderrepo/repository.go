package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"supply/internal/core/domain/model/kernel"
	"supply/internal/core/domain/model/order"
	"supply/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order, guarded by its version. The row update
// matches on (id, version) and bumps the stored version; zero affected rows
// means another transaction won the race and the caller must reload.
// The line set is replaced wholesale, matching the aggregate's
// whole-set-replacement semantics.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"number":           dto.Number,
			"franchise_id":     dto.FranchiseID,
			"delivery_address": dto.DeliveryAddress,
			"delivery_date":    dto.DeliveryDate,
			"status":           dto.Status,
			"version":          aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError(
			"order version",
			fmt.Errorf("order %s was modified concurrently", aggregate.ID()),
		)
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Delete(&LineDTO{}).Error; err != nil {
		return err
	}
	for i := range dto.Lines {
		dto.Lines[i].ID = 0
	}
	if err := r.db.WithContext(ctx).Create(&dto.Lines).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an order while holding a FOR UPDATE lock on its
// row until the surrounding transaction ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, true)
}

func (r *GormOrderRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Preload("Lines")
	if lock {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByFranchise retrieves a franchise's orders, newest first.
func (r *GormOrderRepository) GetAllByFranchise(ctx context.Context, franchiseID kernel.UUID) ([]*order.Order, error) {
	if err := franchiseID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Order("created_at DESC").
		Find(&dtos, "franchise_id = ?", franchiseID.Bytes()).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// NextNumber allocates the next sequential order number for the given day,
// formatted "CMD-YYYYMMDD-NNNN". The per-day counter row is incremented
// atomically, so concurrent creations never receive the same number.
func (r *GormOrderRepository) NextNumber(ctx context.Context, day time.Time) (string, error) {
	dayKey := day.UTC().Format("20060102")

	var value int
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO order_counters (day, value) VALUES (?, 1)
		 ON CONFLICT (day) DO UPDATE SET value = order_counters.value + 1
		 RETURNING value`,
		dayKey,
	).Scan(&value).Error
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("CMD-%s-%04d", dayKey, value), nil
}
