// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"supply/internal/core/domain/model/kernel"
	"supply/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order together with its computed totals
// and sourcing breakdown.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db)
//
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve order: %w", err)
//	}
//
//	fmt.Printf("Order %s: %s EUR, company share %s%%\n",
//	    result.Number, result.GrandTotal, result.CompanyShare)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderLineResponse represents one order line in the read model.
type GetOrderLineResponse struct {
	ProductID     kernel.UUID
	WarehouseID   kernel.UUID
	WarehouseKind string
	Quantity      int
	UnitPrice     string
	Subtotal      string
}

// GetOrderQueryResponse represents an order with its computed totals and
// the 80/20 sourcing breakdown.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	Number          string
	FranchiseID     kernel.UUID
	DeliveryAddress string
	DeliveryDate    time.Time
	Status          string
	CreatedAt       time.Time
	Version         int
	Lines           []GetOrderLineResponse

	GrandTotal       string
	CompanyTotal     string
	IndependentTotal string
	CompanyShare     string
	Conforming       bool

	Warehouses []kernel.UUID
}
