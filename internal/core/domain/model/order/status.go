package order

import (
	"supply/internal/pkg/errs"
)

// Status represents the lifecycle state of a supply order. It implements a
// state machine with a centralized transition table so that no call site
// can skip or double-apply a transition.
//
// State transitions:
//
//	pending ──> validated ──> prepared ──> delivered
//	   │            │            │
//	   └────────────┴────────────┴──> cancelled
//
// delivered and cancelled are terminal; orders become immutable once they
// are reached.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: stock is reserved, the order awaits
	// administrative validation. Lines can still be replaced.
	Pending

	// Validated indicates the order passed the defensive compliance
	// re-check. Lines are frozen.
	Validated

	// Prepared indicates the warehouse teams have picked the order.
	// No stock movement happens on this transition.
	Prepared

	// Delivered is terminal: reserved stock has been committed
	// (permanently consumed).
	Delivered

	// Cancelled is terminal: every reservation has been released back to
	// available stock.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Validated: "validated",
		Prepared:  "prepared",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Validated: "validated",
		Prepared:  "prepared",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses the persisted textual representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status is invalid")
}

// Validate checks that the Status is one of the defined lifecycle states.
// Used when reconstructing orders from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status is invalid")
	}
	return nil
}

// String returns the lowercase name of the status. It implements
// fmt.Stringer and is safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ToValidated transitions pending to validated.
//
// Returns a StateTransitionError for any other starting state; the caller
// decides whether an already-validated order takes the idempotent path.
func (s Status) ToValidated() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewStateTransitionError(s.String(), "validate")
	}
	return Validated, nil
}

// ToPrepared transitions validated to prepared.
func (s Status) ToPrepared() (Status, error) {
	if s != Validated {
		return Unknown, errs.NewStateTransitionError(s.String(), "prepare")
	}
	return Prepared, nil
}

// ToDelivered transitions prepared to delivered.
func (s Status) ToDelivered() (Status, error) {
	if s != Prepared {
		return Unknown, errs.NewStateTransitionError(s.String(), "deliver")
	}
	return Delivered, nil
}

// ToCancelled transitions any non-terminal state to cancelled.
func (s Status) ToCancelled() (Status, error) {
	if s != Pending && s != Validated && s != Prepared {
		return Unknown, errs.NewStateTransitionError(s.String(), "cancel")
	}
	return Cancelled, nil
}

// ValidateEdit checks that the line set may still be replaced. Only pending
// orders are editable: once validated the reservation snapshot is frozen.
func (s Status) ValidateEdit() error {
	if s != Pending {
		return errs.NewStateTransitionError(s.String(), "edit")
	}
	return nil
}
