package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the supply-ordering taxonomy.
var (
	ErrInsufficientStock      = errors.New("insufficient stock")
	ErrComplianceRuleViolated = errors.New("compliance rule violated")
	ErrInvalidStateTransition = errors.New("invalid state transition")
)

// InsufficientStockError is raised by the stock ledger when a reservation
// requests more units than are available for a (product, warehouse) pair.
// The whole create/edit operation aborts; no partial reservation survives.
type InsufficientStockError struct {
	ProductID   string
	WarehouseID string
	Requested   int
	Available   int
}

// NewInsufficientStockError creates an InsufficientStockError for the given
// (product, warehouse) pair.
func NewInsufficientStockError(productID, warehouseID string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Requested:   requested,
		Available:   available,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %s in warehouse %s: requested %d, available %d",
		ErrInsufficientStock, e.ProductID, e.WarehouseID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// ComplianceError is raised when an order's company-warehouse share falls
// below the required percentage. CompanyPercent carries the display value
// rounded to one decimal; the pass/fail decision is always made upstream on
// unrounded values.
type ComplianceError struct {
	CompanyPercent string
	Required       int
	Detail         string
}

// NewComplianceError creates a ComplianceError with the display percentage
// and the required threshold.
func NewComplianceError(companyPercent string, required int, detail string) *ComplianceError {
	return &ComplianceError{
		CompanyPercent: companyPercent,
		Required:       required,
		Detail:         detail,
	}
}

func (e *ComplianceError) Error() string {
	msg := fmt.Sprintf("%s: company share %s%% is below required %d%%",
		ErrComplianceRuleViolated, e.CompanyPercent, e.Required)
	if e.Detail != "" {
		msg += fmt.Sprintf(" (%s)", e.Detail)
	}
	return msg
}

func (e *ComplianceError) Unwrap() error {
	return ErrComplianceRuleViolated
}

// StateTransitionError is raised when a lifecycle operation is attempted on
// an order whose status does not permit it.
type StateTransitionError struct {
	Current   string
	Attempted string
}

// NewStateTransitionError creates a StateTransitionError describing the
// rejected move.
func NewStateTransitionError(current, attempted string) *StateTransitionError {
	return &StateTransitionError{Current: current, Attempted: attempted}
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s order in status %s", ErrInvalidStateTransition, e.Attempted, e.Current)
}

func (e *StateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}
