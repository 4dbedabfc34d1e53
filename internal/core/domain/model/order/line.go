package order

import (
	"errors"
	"fmt"

	"supply/internal/core/domain/model/catalog"
	"supply/internal/core/domain/model/kernel"
	"supply/internal/core/domain/model/stock"
	"supply/internal/pkg/errs"
	"supply/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory method.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one position of an order: a quantity of a product drawn from a
// specific warehouse. It snapshots the unit price and the warehouse kind at
// build time, so order totals and the compliance split stay computable from
// the lines alone, immune to later catalog changes.
//
// A line belongs to exactly one order; at most one line exists per
// (product, warehouse) pair within an order.
type Line struct {
	productID     kernel.UUID
	warehouseID   kernel.UUID
	warehouseKind catalog.WarehouseKind
	quantity      int
	unitPrice     kernel.Money

	guard guard.ConstructorGuard
}

// NewLine creates a Line with validated references, a strictly positive
// quantity, and price/kind snapshots taken from the catalog.
func NewLine(
	productID kernel.UUID,
	warehouseID kernel.UUID,
	warehouseKind catalog.WarehouseKind,
	quantity int,
	unitPrice kernel.Money,
) (Line, error) {
	l := Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setProductID(productID),
		l.setWarehouseID(warehouseID),
		l.setWarehouseKind(warehouseKind),
		l.setQuantity(quantity),
		l.setUnitPrice(unitPrice),
	); err != nil {
		return Line{}, err
	}

	return l, nil
}

// Validate ensures the Line was created through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ProductID returns the referenced product.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// WarehouseID returns the warehouse the quantity is drawn from.
func (l Line) WarehouseID() kernel.UUID {
	return l.warehouseID
}

// WarehouseKind returns the kind snapshot taken at build time.
func (l Line) WarehouseKind() catalog.WarehouseKind {
	return l.warehouseKind
}

// Quantity returns the ordered unit count.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price snapshot taken at build time.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Subtotal returns quantity times the unit-price snapshot.
func (l Line) Subtotal() kernel.Money {
	return l.unitPrice.MulQuantity(l.quantity)
}

// StockKey returns the ledger key this line reserves against.
func (l Line) StockKey() stock.Key {
	return stock.Key{ProductID: l.productID, WarehouseID: l.warehouseID}
}

func (l *Line) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.productID = id
	return nil
}

func (l *Line) setWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.warehouseID = id
	return nil
}

func (l *Line) setWarehouseKind(kind catalog.WarehouseKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	l.warehouseKind = kind
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice is invalid",
			fmt.Errorf("%s is not greater than 0", price.String()),
		)
	}
	l.unitPrice = price
	return nil
}
