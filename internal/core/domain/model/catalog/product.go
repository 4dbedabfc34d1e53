package catalog

import (
	"errors"
	"fmt"

	"supply/internal/core/domain/model/kernel"
	"supply/internal/pkg/errs"
	"supply/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct factory method.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Unit is the unit of measure a product is sold in.
type Unit string

const (
	UnitKilogram Unit = "kg"
	UnitLitre    Unit = "litre"
	UnitPiece    Unit = "piece"
	UnitPortion  Unit = "portion"
)

// Validate checks that the unit is one of the defined values.
func (u Unit) Validate() error {
	switch u {
	case UnitKilogram, UnitLitre, UnitPiece, UnitPortion:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"unit is invalid",
			fmt.Errorf("%q is not a valid unit of measure", string(u)),
		)
	}
}

// Product is immutable reference data describing an orderable good. The
// unit price recorded here is snapshotted into an order line at build time;
// within a single order's lifetime the core treats products as frozen.
type Product struct {
	id        kernel.UUID
	name      string
	unitPrice kernel.Money
	unit      Unit

	guard guard.ConstructorGuard
}

// NewProduct creates a Product after validating its identifier, name,
// strictly positive unit price, and unit of measure.
func NewProduct(id kernel.UUID, name string, unitPrice kernel.Money, unit Unit) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setUnitPrice(unitPrice),
		p.setUnit(unit),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product was created through NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares products by identity.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product display name.
func (p *Product) Name() string {
	return p.name
}

// UnitPrice returns the current catalog price per unit.
func (p *Product) UnitPrice() kernel.Money {
	return p.unitPrice
}

// Unit returns the unit of measure.
func (p *Product) Unit() Unit {
	return p.unit
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name is required")
	}
	p.name = name
	return nil
}

func (p *Product) setUnitPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice is invalid",
			fmt.Errorf("%s is not greater than 0", price.String()),
		)
	}
	p.unitPrice = price
	return nil
}

func (p *Product) setUnit(unit Unit) error {
	if err := unit.Validate(); err != nil {
		return err
	}
	p.unit = unit
	return nil
}
