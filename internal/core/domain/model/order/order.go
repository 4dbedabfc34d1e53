package order

import (
	"errors"
	"fmt"
	"time"

	"supply/internal/core/domain/model/kernel"
	"supply/internal/pkg/errs"
	"supply/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of a franchise supply order. It owns the
// lifecycle from creation through validation, preparation and delivery (or
// cancellation), and it is the only object allowed to change its own line
// set and status.
//
// Order maintains these invariants:
//   - at least one line; at most one line per (product, warehouse) pair
//   - every monetary figure is recomputed from the lines, never cached
//   - lines are replaceable only while the order is pending, and only as a
//     whole set, so the compliance verdict is always recomputed atomically
//   - status changes only through the Status transition table
//   - the aggregate is immutable once delivered or cancelled
//
// Stock movement is not the aggregate's job: the command handlers drive the
// ledger in the same transaction that persists the status change.
type Order struct {
	id              kernel.UUID
	number          string
	franchiseID     kernel.UUID
	deliveryAddress string
	deliveryDate    time.Time
	status          Status
	createdAt       time.Time
	version         int
	lines           []Line

	guard guard.ConstructorGuard
}

// NewOrder creates a pending Order from an already-validated line set (see
// services.OrderBuilder). The line-set invariants are re-checked here so
// the aggregate cannot be constructed in an inconsistent state even by a
// buggy caller.
func NewOrder(
	id kernel.UUID,
	number string,
	franchiseID kernel.UUID,
	deliveryAddress string,
	deliveryDate time.Time,
	lines []Line,
) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: time.Now().UTC(),
		version:   1,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setFranchiseID(franchiseID),
		o.setDeliveryAddress(deliveryAddress),
		o.setDeliveryDate(deliveryDate),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence in its stored status
// and version.
func RestoreOrder(
	id kernel.UUID,
	number string,
	franchiseID kernel.UUID,
	deliveryAddress string,
	deliveryDate time.Time,
	status Status,
	createdAt time.Time,
	version int,
	lines []Line,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("order version", fmt.Errorf("%d is not greater than 0", version))
	}

	o := &Order{
		status:    status,
		createdAt: createdAt,
		version:   version,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setFranchiseID(franchiseID),
		o.setDeliveryAddress(deliveryAddress),
		o.setDeliveryDate(deliveryDate),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor. Called by
// repositories before persisting the aggregate.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-facing order number ("CMD-20260830-0001").
func (o *Order) Number() string {
	return o.number
}

// FranchiseID returns the ordering franchise.
func (o *Order) FranchiseID() kernel.UUID {
	return o.franchiseID
}

// DeliveryAddress returns the full delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DeliveryDate returns the requested delivery date.
func (o *Order) DeliveryDate() time.Time {
	return o.deliveryDate
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version returns the optimistic-concurrency version. The repository bumps
// it on every successful update.
func (o *Order) Version() int {
	return o.version
}

// Lines returns a copy of the order's line set.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// GrandTotal returns the sum of all line subtotals.
func (o *Order) GrandTotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, l := range o.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// WarehouseIDs returns the distinct warehouses this order draws from, in
// line order.
func (o *Order) WarehouseIDs() []kernel.UUID {
	seen := make(map[string]bool, len(o.lines))
	ids := make([]kernel.UUID, 0, len(o.lines))
	for _, l := range o.lines {
		key := l.WarehouseID().String()
		if !seen[key] {
			seen[key] = true
			ids = append(ids, l.WarehouseID())
		}
	}
	return ids
}

// MarkValidated transitions the order from pending to validated. The
// defensive compliance re-check happens in the command handler before this
// is called.
func (o *Order) MarkValidated() error {
	newStatus, err := o.status.ToValidated()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkPrepared transitions the order from validated to prepared. No stock
// movement is associated with this transition.
func (o *Order) MarkPrepared() error {
	newStatus, err := o.status.ToPrepared()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkDelivered transitions the order from prepared to delivered. The
// caller commits every line's reservation in the same transaction.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.ToDelivered()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel transitions any non-terminal order to cancelled. The caller
// releases every line's reservation in the same transaction.
func (o *Order) Cancel() error {
	newStatus, err := o.status.ToCancelled()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// ReplaceLines swaps the whole line set while the order is still pending.
// Line-by-line patching is deliberately unsupported: replacing the set as a
// unit keeps the compliance recomputation atomic.
func (o *Order) ReplaceLines(lines []Line) error {
	if err := o.status.ValidateEdit(); err != nil {
		return err
	}
	return o.setLines(lines)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order number is required")
	}
	o.number = number
	return nil
}

func (o *Order) setFranchiseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("franchiseID is required", err)
	}
	o.franchiseID = id
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress is required")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setDeliveryDate(date time.Time) error {
	// A zero date means "as soon as possible".
	o.deliveryDate = date
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order must contain at least one line")
	}

	seen := make(map[string]bool, len(lines))
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
		key := l.ProductID().String() + "/" + l.WarehouseID().String()
		if seen[key] {
			return errs.NewValueIsInvalidErrorWithCause(
				"order lines are invalid",
				fmt.Errorf("duplicate line for product %s in warehouse %s", l.ProductID(), l.WarehouseID()),
			)
		}
		seen[key] = true
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}
