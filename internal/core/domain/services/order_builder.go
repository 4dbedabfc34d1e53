package services

import (
	"fmt"

	"supply/internal/core/domain/model/catalog"
	"supply/internal/core/domain/model/kernel"
	"supply/internal/core/domain/model/order"
	"supply/internal/core/domain/model/stock"
	"supply/internal/pkg/errs"
)

// LineRequest is one requested order position, as it arrives from the
// franchise: references plus a quantity, no prices.
type LineRequest struct {
	ProductID   kernel.UUID
	WarehouseID kernel.UUID
	Quantity    int
}

// OrderBuilder is a domain service that turns raw line requests into a
// validated order line set. It resolves each request against catalog
// snapshots, takes the price and warehouse-kind snapshots, checks requested
// quantities against the stock ledger, and gates the whole set behind the
// sourcing rule.
//
// The stock check here is advisory: the builder works on a snapshot loaded
// by the caller, and the authoritative reserve happens later under row
// locks in the same transaction that persists the order. The builder's job
// is to reject obviously unfulfillable sets before any lock is taken.
type OrderBuilder struct {
	evaluator ComplianceEvaluator
}

// NewOrderBuilder creates a new OrderBuilder instance.
func NewOrderBuilder() OrderBuilder {
	return OrderBuilder{evaluator: NewComplianceEvaluator()}
}

// BuildLines assembles order lines from the requests. Products and
// warehouses are keyed by their UUID string, entries by stock key.
//
// Returns the first resolution error encountered: unknown references map to
// ObjectNotFoundError, shortages to InsufficientStockError, and a failing
// sourcing split to ComplianceError.
func (b OrderBuilder) BuildLines(
	requests []LineRequest,
	products map[string]*catalog.Product,
	warehouses map[string]*catalog.Warehouse,
	entries map[stock.Key]*stock.Entry,
) ([]order.Line, error) {
	if len(requests) == 0 {
		return nil, errs.NewValueIsRequiredError("order must contain at least one line")
	}

	lines := make([]order.Line, 0, len(requests))
	seen := make(map[stock.Key]bool, len(requests))

	for _, req := range requests {
		key, err := stock.NewKey(req.ProductID, req.WarehouseID)
		if err != nil {
			return nil, err
		}
		if seen[key] {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"order lines are invalid",
				fmt.Errorf("duplicate line for product %s in warehouse %s", req.ProductID, req.WarehouseID),
			)
		}
		seen[key] = true

		product, ok := products[req.ProductID.String()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("product", req.ProductID)
		}
		warehouse, ok := warehouses[req.WarehouseID.String()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("warehouse", req.WarehouseID)
		}

		entry, ok := entries[key]
		if !ok {
			return nil, errs.NewInsufficientStockError(
				req.ProductID.String(), req.WarehouseID.String(), req.Quantity, 0)
		}
		if req.Quantity > entry.Available() {
			return nil, errs.NewInsufficientStockError(
				req.ProductID.String(), req.WarehouseID.String(), req.Quantity, entry.Available())
		}

		line, err := order.NewLine(
			product.ID(),
			warehouse.ID(),
			warehouse.Kind(),
			req.Quantity,
			product.UnitPrice(),
		)
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	if err := b.evaluator.Check(lines); err != nil {
		return nil, err
	}

	return lines, nil
}
