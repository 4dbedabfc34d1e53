package catalogrepo

import (
	"context"
	"errors"

	"supply/internal/core/domain/model/catalog"
	"supply/internal/core/domain/model/kernel"
	"supply/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// AddWarehouse saves a new warehouse to the database.
func (r *GormCatalogRepository) AddWarehouse(ctx context.Context, warehouse *catalog.Warehouse) error {
	if err := warehouse.Validate(); err != nil {
		return err
	}

	dto := warehouseFromDomain(warehouse)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddProduct saves a new product to the database.
func (r *GormCatalogRepository) AddProduct(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(product)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetWarehouse retrieves a warehouse by ID.
func (r *GormCatalogRepository) GetWarehouse(ctx context.Context, id kernel.UUID) (*catalog.Warehouse, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WarehouseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("warehouse", id.String())
		}
		return nil, err
	}

	return warehouseToDomain(dto)
}

// GetProduct retrieves a product by ID.
func (r *GormCatalogRepository) GetProduct(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return productToDomain(dto)
}

// GetAllWarehouses retrieves every warehouse, company ones first, then by name.
func (r *GormCatalogRepository) GetAllWarehouses(ctx context.Context) ([]*catalog.Warehouse, error) {
	var dtos []WarehouseDTO
	if err := r.db.WithContext(ctx).
		Order("kind ASC, name ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	warehouses := make([]*catalog.Warehouse, 0, len(dtos))
	for _, dto := range dtos {
		w, err := warehouseToDomain(dto)
		if err != nil {
			return nil, err
		}
		warehouses = append(warehouses, w)
	}

	return warehouses, nil
}
