// Package stockrepo persists the stock ledger. One row exists per
// (product, warehouse) pair; the composite primary key doubles as the
// row-lock target for reservations.
package stockrepo

import (
	"github.com/google/uuid"

	"supply/internal/core/domain/model/kernel"
	"supply/internal/core/domain/model/stock"
)

// EntryDTO represents the database structure for one stock ledger row.
type EntryDTO struct {
	ProductID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	WarehouseID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Available      int
	Reserved       int
	AlertThreshold int
}

// TableName specifies the database table name for stock entries.
func (EntryDTO) TableName() string {
	return "stock_entries"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *stock.Entry) EntryDTO {
	return EntryDTO{
		ProductID:      entry.Key().ProductID.Bytes(),
		WarehouseID:    entry.Key().WarehouseID.Bytes(),
		Available:      entry.Available(),
		Reserved:       entry.Reserved(),
		AlertThreshold: entry.AlertThreshold(),
	}
}

// toDomain converts a database DTO to a ledger entry using RestoreEntry.
func toDomain(dto EntryDTO) (*stock.Entry, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	key, err := stock.NewKey(productID, warehouseID)
	if err != nil {
		return nil, err
	}

	return stock.RestoreEntry(key, dto.Available, dto.Reserved, dto.AlertThreshold)
}
