package queries

import (
	"errors"

	"supply/internal/core/domain/model/kernel"
	"supply/internal/pkg/guard"
)

var (
	ErrListAvailableProductsQueryIsNotConstructed = errors.New(
		"ListAvailableProductsQuery must be created via NewListAvailableProductsQuery constructor",
	)
)

// ListAvailableProductsQuery retrieves the products a warehouse can supply
// right now. Exhausted ledger rows are excluded; the availability shown here
// is advisory, the authoritative check happens under lock at reserve time.
type ListAvailableProductsQuery struct {
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListAvailableProductsQuery creates a query for one warehouse's
// orderable products.
func NewListAvailableProductsQuery(warehouseID kernel.UUID) (ListAvailableProductsQuery, error) {
	if err := warehouseID.Validate(); err != nil {
		return ListAvailableProductsQuery{}, err
	}

	return ListAvailableProductsQuery{
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAvailableProductsQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableProductsQueryIsNotConstructed)
}

// WarehouseID returns the warehouse whose products are requested.
func (q ListAvailableProductsQuery) WarehouseID() kernel.UUID {
	return q.warehouseID
}

// ListAvailableProductsQueryResponse represents one orderable product with
// its current availability in the requested warehouse.
type ListAvailableProductsQueryResponse struct {
	ProductID kernel.UUID
	Name      string
	Unit      string
	UnitPrice string
	Available int
}
