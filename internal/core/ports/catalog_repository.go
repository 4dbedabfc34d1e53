package ports

import (
	"context"

	"supply/internal/core/domain/model/catalog"
	"supply/internal/core/domain/model/kernel"
)

// CatalogRepository defines the read contract for warehouses and products.
// The catalog is reference data in this context: orders snapshot prices and
// warehouse kinds from it, but never write back.
type CatalogRepository interface {
	// AddWarehouse persists a new warehouse.
	AddWarehouse(ctx context.Context, warehouse *catalog.Warehouse) error

	// AddProduct persists a new product.
	AddProduct(ctx context.Context, product *catalog.Product) error

	// GetWarehouse retrieves a warehouse by its unique identifier.
	GetWarehouse(ctx context.Context, id kernel.UUID) (*catalog.Warehouse, error)

	// GetProduct retrieves a product by its unique identifier.
	GetProduct(ctx context.Context, id kernel.UUID) (*catalog.Product, error)

	// GetAllWarehouses retrieves every warehouse, company ones first.
	GetAllWarehouses(ctx context.Context) ([]*catalog.Warehouse, error)
}
