package queries

import (
	"errors"

	"supply/internal/core/domain/model/kernel"
	"supply/internal/pkg/guard"
)

var (
	ErrComplianceReportQueryIsNotConstructed = errors.New(
		"ComplianceReportQuery must be created via NewComplianceReportQuery constructor",
	)
)

// ComplianceReportQuery produces the per-order 80/20 sourcing report.
// Cancelled orders are excluded; every other order appears with its company
// share so auditors can spot non-conforming orders created before the rule
// was enforced at validation time.
type ComplianceReportQuery struct {
	guard guard.ConstructorGuard
}

// NewComplianceReportQuery creates a query for the sourcing report.
// This is a parameterless query covering all non-cancelled orders.
func NewComplianceReportQuery() ComplianceReportQuery {
	return ComplianceReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ComplianceReportQuery) Validate() error {
	return q.guard.Validate(ErrComplianceReportQueryIsNotConstructed)
}

// ComplianceReportQueryResponse represents one order's sourcing breakdown.
type ComplianceReportQueryResponse struct {
	OrderID          kernel.UUID
	Number           string
	Status           string
	CompanyTotal     string
	IndependentTotal string
	GrandTotal       string
	CompanyShare     string
	Conforming       bool
}
