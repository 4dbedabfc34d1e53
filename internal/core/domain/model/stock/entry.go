package stock

import (
	"errors"
	"fmt"

	"supply/internal/pkg/errs"
	"supply/internal/pkg/guard"
)

// ErrEntryIsNotConstructed is returned when an Entry instance was not
// created through the NewEntry or RestoreEntry factory methods.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry constructor")

// DefaultAlertThreshold is the low-stock threshold applied when none is
// configured for an entry.
const DefaultAlertThreshold = 10

// Entry is the stock ledger record for one (product, warehouse) pair. It is
// the only place inventory counters are mutated.
//
// Entry maintains these invariants:
//   - available >= 0 and reserved >= 0 at all times
//   - available never includes units already promised to an order
//   - reserved units leave the entry only through Release (back to
//     available) or Commit (permanent consumption on delivery)
//
// Entry itself is not concurrency-safe; callers serialize access per key by
// holding a database row lock for the duration of the mutation (see the
// stock repository port).
type Entry struct {
	key            Key
	available      int
	reserved       int
	alertThreshold int

	guard guard.ConstructorGuard
}

// NewEntry creates a ledger entry with the given initial availability and
// nothing reserved. A non-positive alertThreshold falls back to
// DefaultAlertThreshold.
func NewEntry(key Key, available, alertThreshold int) (*Entry, error) {
	if available < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"available is invalid",
			fmt.Errorf("%d is negative", available),
		)
	}
	if alertThreshold <= 0 {
		alertThreshold = DefaultAlertThreshold
	}

	return &Entry{
		key:            key,
		available:      available,
		alertThreshold: alertThreshold,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestoreEntry reconstructs a ledger entry from persistence, including its
// reserved counter.
func RestoreEntry(key Key, available, reserved, alertThreshold int) (*Entry, error) {
	if available < 0 || reserved < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"stock counters are invalid",
			fmt.Errorf("available %d, reserved %d", available, reserved),
		)
	}
	if alertThreshold <= 0 {
		alertThreshold = DefaultAlertThreshold
	}

	return &Entry{
		key:            key,
		available:      available,
		reserved:       reserved,
		alertThreshold: alertThreshold,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Entry was created through a constructor.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// Key returns the (product, warehouse) pair this entry tracks.
func (e *Entry) Key() Key {
	return e.key
}

// Available returns the unreserved unit count.
func (e *Entry) Available() int {
	return e.available
}

// Reserved returns the unit count held by pending, validated, or prepared
// orders.
func (e *Entry) Reserved() int {
	return e.reserved
}

// AlertThreshold returns the low-stock alert threshold.
func (e *Entry) AlertThreshold() int {
	return e.alertThreshold
}

// Total returns available plus reserved.
func (e *Entry) Total() int {
	return e.available + e.reserved
}

// IsLow reports whether availability has dropped to or below the alert
// threshold.
func (e *Entry) IsLow() bool {
	return e.available <= e.alertThreshold
}

// Reserve moves qty units from available to reserved. It fails with an
// InsufficientStockError when qty exceeds availability, leaving the entry
// untouched.
func (e *Entry) Reserve(qty int) error {
	if err := validateQuantity(qty); err != nil {
		return err
	}
	if qty > e.available {
		return errs.NewInsufficientStockError(
			e.key.ProductID.String(),
			e.key.WarehouseID.String(),
			qty,
			e.available,
		)
	}

	e.available -= qty
	e.reserved += qty
	return nil
}

// Release moves qty units from reserved back to available. Used on
// cancellation and on line-set replacement. A qty above the reserved count
// is a caller bug and fails without mutating the entry.
func (e *Entry) Release(qty int) error {
	if err := validateQuantity(qty); err != nil {
		return err
	}
	if qty > e.reserved {
		return errs.NewValueIsInvalidErrorWithCause(
			"release quantity is invalid",
			fmt.Errorf("%d exceeds reserved %d", qty, e.reserved),
		)
	}

	e.reserved -= qty
	e.available += qty
	return nil
}

// Commit permanently removes qty units from reserved without returning them
// to available, representing physical consumption on delivery.
func (e *Entry) Commit(qty int) error {
	if err := validateQuantity(qty); err != nil {
		return err
	}
	if qty > e.reserved {
		return errs.NewValueIsInvalidErrorWithCause(
			"commit quantity is invalid",
			fmt.Errorf("%d exceeds reserved %d", qty, e.reserved),
		)
	}

	e.reserved -= qty
	return nil
}

func validateQuantity(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", qty),
		)
	}
	return nil
}
