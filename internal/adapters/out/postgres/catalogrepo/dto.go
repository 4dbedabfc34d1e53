// Package catalogrepo persists warehouses and products. The catalog is
// reference data: orders snapshot from it and never write back.
package catalogrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"supply/internal/core/domain/model/catalog"
	"supply/internal/core/domain/model/kernel"
)

// WarehouseDTO represents the database structure for warehouses.
type WarehouseDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
	Kind int `gorm:"index"`
}

// TableName specifies the database table name for warehouses.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// ProductDTO represents the database structure for products.
type ProductDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	Unit      string
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

func warehouseFromDomain(w *catalog.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:   w.ID().Bytes(),
		Name: w.Name(),
		Kind: int(w.Kind()),
	}
}

func warehouseToDomain(dto WarehouseDTO) (*catalog.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.NewWarehouse(id, dto.Name, catalog.WarehouseKind(dto.Kind))
}

func productFromDomain(p *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:        p.ID().Bytes(),
		Name:      p.Name(),
		UnitPrice: p.UnitPrice().Amount(),
		Unit:      string(p.Unit()),
	}
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return catalog.NewProduct(id, dto.Name, price, catalog.Unit(dto.Unit))
}
