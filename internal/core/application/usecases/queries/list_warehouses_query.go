package queries

import (
	"errors"

	"supply/internal/core/domain/model/kernel"
	"supply/internal/pkg/guard"
)

var (
	ErrListWarehousesQueryIsNotConstructed = errors.New(
		"ListWarehousesQuery must be created via NewListWarehousesQuery constructor",
	)
)

// ListWarehousesQuery retrieves every warehouse a franchise can order from.
// Company warehouses come first so clients can surface the sourcing that
// counts toward the 80% obligation.
type ListWarehousesQuery struct {
	guard guard.ConstructorGuard
}

// NewListWarehousesQuery creates a query to retrieve all warehouses.
// This is a parameterless query that fetches the complete warehouse list.
func NewListWarehousesQuery() ListWarehousesQuery {
	return ListWarehousesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListWarehousesQuery) Validate() error {
	return q.guard.Validate(ErrListWarehousesQueryIsNotConstructed)
}

// ListWarehousesQueryResponse represents warehouse information in the read model.
type ListWarehousesQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Kind      string
	IsCompany bool
}
