// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"supply/internal/core/domain/model/catalog"
	"supply/internal/core/domain/model/kernel"
	"supply/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The line set is stored in a child table so that the unique
// (order, product, warehouse) constraint is enforced by the database as
// well as by the aggregate.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number          string    `gorm:"uniqueIndex"`
	FranchiseID     uuid.UUID `gorm:"type:uuid;index"`
	DeliveryAddress string
	DeliveryDate    *time.Time
	Status          int `gorm:"index"`
	CreatedAt       time.Time
	Version         int
	Lines           []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one order line row, carrying the price and
// warehouse-kind snapshots taken when the line was built.
type LineDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	OrderID       uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_order_product_warehouse"`
	ProductID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_order_product_warehouse"`
	WarehouseID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_order_product_warehouse"`
	WarehouseKind int
	Quantity      int
	UnitPrice     decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order lines.
func (LineDTO) TableName() string {
	return "order_lines"
}

// CounterDTO backs per-day sequential order-number allocation. One row per
// calendar day, atomically incremented on each allocation.
type CounterDTO struct {
	Day   string `gorm:"primaryKey"`
	Value int
}

// TableName specifies the database table name for order-number counters.
func (CounterDTO) TableName() string {
	return "order_counters"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var deliveryDate *time.Time
	if d := aggregate.DeliveryDate(); !d.IsZero() {
		deliveryDate = &d
	}

	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, l := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			OrderID:       aggregate.ID().Bytes(),
			ProductID:     l.ProductID().Bytes(),
			WarehouseID:   l.WarehouseID().Bytes(),
			WarehouseKind: int(l.WarehouseKind()),
			Quantity:      l.Quantity(),
			UnitPrice:     l.UnitPrice().Amount(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Number:          aggregate.Number(),
		FranchiseID:     aggregate.FranchiseID().Bytes(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		DeliveryDate:    deliveryDate,
		Status:          int(aggregate.Status()),
		CreatedAt:       aggregate.CreatedAt(),
		Version:         aggregate.Version(),
		Lines:           lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its line set using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	franchiseID, err := kernel.UUIDFromBytes(dto.FranchiseID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, lineErr := lineToDomain(l)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	var deliveryDate time.Time
	if dto.DeliveryDate != nil {
		deliveryDate = *dto.DeliveryDate
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		franchiseID,
		dto.DeliveryAddress,
		deliveryDate,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.Version,
		lines,
	)
}

func lineToDomain(dto LineDTO) (order.Line, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Line{}, err
	}

	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return order.Line{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Line{}, err
	}

	return order.NewLine(
		productID,
		warehouseID,
		catalog.WarehouseKind(dto.WarehouseKind),
		dto.Quantity,
		unitPrice,
	)
}
