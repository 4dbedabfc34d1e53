package catalog

import (
	"errors"
	"fmt"

	"supply/internal/core/domain/model/kernel"
	"supply/internal/pkg/errs"
	"supply/internal/pkg/guard"
)

// ErrWarehouseIsNotConstructed is returned when a Warehouse instance was not
// created through the NewWarehouse factory method.
var ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")

// WarehouseKind distinguishes company-operated warehouses from independent
// suppliers. The distinction drives the 80/20 rule: at least 80% of an
// order's value must come from company warehouses.
type WarehouseKind int

const (
	// KindUnknown represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized WarehouseKind values.
	KindUnknown WarehouseKind = iota

	// KindCompany marks a warehouse operated by the parent company.
	// Purchases from it count toward the required 80% share.
	KindCompany

	// KindIndependent marks a warehouse operated by an independent supplier.
	// Purchases from it are capped at 20% of the order value.
	KindIndependent
)

func getKindStrings() map[WarehouseKind]string {
	return map[WarehouseKind]string{
		KindUnknown:     "unknown",
		KindCompany:     "company",
		KindIndependent: "independent",
	}
}

// Validate checks that the kind is one of the two defined values.
func (k WarehouseKind) Validate() error {
	if k != KindCompany && k != KindIndependent {
		return errs.NewValueIsInvalidErrorWithCause(
			"warehouse kind is invalid",
			fmt.Errorf("%d is not a valid warehouse kind", k),
		)
	}
	return nil
}

// String returns "company", "independent", or "unknown".
func (k WarehouseKind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// Warehouse is immutable reference data describing a physical stock
// location. The core never mutates warehouses; it only reads them to
// resolve order lines and classify their value for the compliance check.
type Warehouse struct {
	id   kernel.UUID
	name string
	kind WarehouseKind

	guard guard.ConstructorGuard
}

// NewWarehouse creates a Warehouse after validating its identifier, name,
// and kind.
func NewWarehouse(id kernel.UUID, name string, kind WarehouseKind) (*Warehouse, error) {
	w := &Warehouse{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setKind(kind),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// Validate ensures the Warehouse was created through NewWarehouse.
func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

// IsEqual compares warehouses by identity.
func (w *Warehouse) IsEqual(other *Warehouse) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the warehouse identifier.
func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

// Name returns the warehouse display name.
func (w *Warehouse) Name() string {
	return w.name
}

// Kind returns the warehouse kind.
func (w *Warehouse) Kind() WarehouseKind {
	return w.kind
}

// IsCompany reports whether purchases from this warehouse count toward the
// required company share.
func (w *Warehouse) IsCompany() bool {
	return w.kind == KindCompany
}

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("warehouse name is required")
	}
	w.name = name
	return nil
}

func (w *Warehouse) setKind(kind WarehouseKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	w.kind = kind
	return nil
}
