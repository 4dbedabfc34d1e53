package queries

import (
	"context"

	"supply/internal/core/domain/model/catalog"
	"supply/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListWarehousesQueryHandler retrieves all warehouse information from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type ListWarehousesQueryHandler struct {
	db *gorm.DB
}

// NewListWarehousesQueryHandler creates a handler for warehouse retrieval queries.
// Requires a GORM database connection for query execution.
func NewListWarehousesQueryHandler(db *gorm.DB) ListWarehousesQueryHandler {
	return ListWarehousesQueryHandler{db: db}
}

// Handle executes the query to retrieve all warehouses.
// Returns company warehouses first, then independents, each sorted by name.
func (h ListWarehousesQueryHandler) Handle(
	ctx context.Context,
	query ListWarehousesQuery,
) ([]ListWarehousesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	warehouses := make([]ListWarehousesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			kind
		FROM warehouses
		ORDER BY kind, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var warehouse ListWarehousesQueryResponse
		var id uuid.UUID
		var kind int

		err = rows.Scan(&id, &warehouse.Name, &kind)
		if err != nil {
			return nil, err
		}

		warehouseID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		warehouse.ID = warehouseID
		warehouse.Kind = catalog.WarehouseKind(kind).String()
		warehouse.IsCompany = catalog.WarehouseKind(kind) == catalog.KindCompany

		warehouses = append(warehouses, warehouse)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return warehouses, nil
}
