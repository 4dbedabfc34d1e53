package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"supply/internal/core/domain/model/catalog"
	"supply/internal/core/domain/model/kernel"
	"supply/internal/core/domain/model/order"
	"supply/internal/pkg/errs"
)

// RequiredCompanyShare is the minimum percentage of an order's value that
// must be sourced from company warehouses. Franchise contracts fix it at
// 80%.
const RequiredCompanyShare = 80

// ComplianceResult breaks an order's value down by warehouse kind and
// carries the verdict against the sourcing rule.
//
// CompanyShare is kept unrounded; rounding only happens at the display
// edge so that a 79.96% order is never waved through as "80.0%".
type ComplianceResult struct {
	CompanyTotal     kernel.Money
	IndependentTotal kernel.Money
	GrandTotal       kernel.Money
	CompanyShare     decimal.Decimal
	Conforming       bool
}

// CompanyShareDisplay returns the company share rounded to one decimal
// place for reports and error messages.
func (r ComplianceResult) CompanyShareDisplay() string {
	return r.CompanyShare.StringFixed(1)
}

// ComplianceEvaluator is a domain service that computes the sourcing split
// of a line set. It is stateless and safe for concurrent use.
//
// Business rules:
//   - a line counts as company-sourced when its warehouse-kind snapshot is
//     catalog.KindCompany
//   - the verdict compares exact decimals: companyTotal*100 >= grandTotal*80
//   - an empty line set is trivially conforming
type ComplianceEvaluator struct{}

// NewComplianceEvaluator creates a new ComplianceEvaluator instance.
func NewComplianceEvaluator() ComplianceEvaluator {
	return ComplianceEvaluator{}
}

// Evaluate computes the sourcing split of the given lines.
func (ComplianceEvaluator) Evaluate(lines []order.Line) ComplianceResult {
	companyTotal := kernel.ZeroMoney()
	independentTotal := kernel.ZeroMoney()

	for _, l := range lines {
		if l.WarehouseKind() == catalog.KindCompany {
			companyTotal = companyTotal.Add(l.Subtotal())
		} else {
			independentTotal = independentTotal.Add(l.Subtotal())
		}
	}

	grandTotal := companyTotal.Add(independentTotal)

	result := ComplianceResult{
		CompanyTotal:     companyTotal,
		IndependentTotal: independentTotal,
		GrandTotal:       grandTotal,
	}

	if grandTotal.IsZero() {
		result.CompanyShare = decimal.NewFromInt(100)
		result.Conforming = true
		return result
	}

	result.CompanyShare = companyTotal.Amount().
		Mul(decimal.NewFromInt(100)).
		Div(grandTotal.Amount())
	result.Conforming = companyTotal.Amount().
		Mul(decimal.NewFromInt(100)).
		GreaterThanOrEqual(grandTotal.Amount().Mul(decimal.NewFromInt(RequiredCompanyShare)))

	return result
}

// Check evaluates the lines and returns a ComplianceError when the company
// share falls below RequiredCompanyShare.
func (e ComplianceEvaluator) Check(lines []order.Line) error {
	result := e.Evaluate(lines)
	if result.Conforming {
		return nil
	}

	return errs.NewComplianceError(
		result.CompanyShareDisplay(),
		RequiredCompanyShare,
		fmt.Sprintf("company %s, independent %s of %s total",
			result.CompanyTotal, result.IndependentTotal, result.GrandTotal),
	)
}
