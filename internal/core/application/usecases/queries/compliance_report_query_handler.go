package queries

import (
	"context"

	"supply/internal/core/domain/model/kernel"
	"supply/internal/core/domain/model/order"
	"supply/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ComplianceReportQueryHandler builds the 80/20 sourcing report.
// Reads every non-cancelled order's lines in one pass and recomputes the
// breakdown per order with the same evaluator the write path uses.
type ComplianceReportQueryHandler struct {
	db        *gorm.DB
	evaluator services.ComplianceEvaluator
}

// NewComplianceReportQueryHandler creates a handler for the sourcing report.
// Requires a GORM database connection for query execution.
func NewComplianceReportQueryHandler(db *gorm.DB) ComplianceReportQueryHandler {
	return ComplianceReportQueryHandler{
		db:        db,
		evaluator: services.NewComplianceEvaluator(),
	}
}

// Handle executes the report query.
// Orders are returned newest first; each entry carries the exact-decimal
// verdict, not the rounded display share.
func (h ComplianceReportQueryHandler) Handle(
	ctx context.Context,
	query ComplianceReportQuery,
) ([]ComplianceReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.status,
			l.product_id,
			l.warehouse_id,
			l.warehouse_kind,
			l.quantity,
			l.unit_price
		FROM orders o
		JOIN order_lines l ON l.order_id = o.id
		WHERE o.status <> ?
		ORDER BY o.created_at DESC, o.id, l.id
	`, int(order.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := make([]ComplianceReportQueryResponse, 0)
	linesByOrder := make(map[kernel.UUID][]order.Line)

	for rows.Next() {
		var (
			orderID     uuid.UUID
			number      string
			status      int
			productID   uuid.UUID
			warehouseID uuid.UUID
			kind        int
			quantity    int
			unitPrice   decimal.Decimal
		)

		err = rows.Scan(
			&orderID, &number, &status,
			&productID, &warehouseID, &kind, &quantity, &unitPrice,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		line, lineErr := restoreLine(productID, warehouseID, kind, quantity, unitPrice)
		if lineErr != nil {
			return nil, lineErr
		}

		if _, ok := linesByOrder[id]; !ok {
			report = append(report, ComplianceReportQueryResponse{
				OrderID: id,
				Number:  number,
				Status:  order.Status(status).String(),
			})
		}
		linesByOrder[id] = append(linesByOrder[id], line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range report {
		result := h.evaluator.Evaluate(linesByOrder[report[i].OrderID])
		report[i].CompanyTotal = result.CompanyTotal.String()
		report[i].IndependentTotal = result.IndependentTotal.String()
		report[i].GrandTotal = result.GrandTotal.String()
		report[i].CompanyShare = result.CompanyShareDisplay()
		report[i].Conforming = result.Conforming
	}

	return report, nil
}
