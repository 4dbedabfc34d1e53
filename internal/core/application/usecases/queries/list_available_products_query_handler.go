package queries

import (
	"context"

	"supply/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListAvailableProductsQueryHandler retrieves the orderable products of one
// warehouse. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type ListAvailableProductsQueryHandler struct {
	db *gorm.DB
}

// NewListAvailableProductsQueryHandler creates a handler for per-warehouse
// product retrieval queries.
func NewListAvailableProductsQueryHandler(db *gorm.DB) ListAvailableProductsQueryHandler {
	return ListAvailableProductsQueryHandler{db: db}
}

// Handle executes the query for one warehouse's products.
// Only products with remaining availability are returned, sorted by name.
func (h ListAvailableProductsQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableProductsQuery,
) ([]ListAvailableProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ListAvailableProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			p.unit,
			p.unit_price,
			s.available
		FROM stock_entries s
		JOIN products p ON p.id = s.product_id
		WHERE s.warehouse_id = ? AND s.available > 0
		ORDER BY p.name
	`, query.WarehouseID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var product ListAvailableProductsQueryResponse
		var id uuid.UUID
		var unitPrice decimal.Decimal

		err = rows.Scan(&id, &product.Name, &product.Unit, &unitPrice, &product.Available)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		product.ProductID = productID
		product.UnitPrice = unitPrice.StringFixed(2)

		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
