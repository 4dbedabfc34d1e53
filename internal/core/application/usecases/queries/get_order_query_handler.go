package queries

import (
	"context"
	"database/sql"
	"errors"

	"supply/internal/core/domain/model/catalog"
	"supply/internal/core/domain/model/kernel"
	"supply/internal/core/domain/model/order"
	"supply/internal/core/domain/services"
	"supply/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern;
// totals and the sourcing breakdown are recomputed from the stored lines.
type GetOrderQueryHandler struct {
	db        *gorm.DB
	evaluator services.ComplianceEvaluator
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		db:        db,
		evaluator: services.NewComplianceEvaluator(),
	}
}

// Handle executes the query for one order.
// Returns ObjectNotFoundError when no order carries the requested identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		response     GetOrderQueryResponse
		id           uuid.UUID
		franchiseID  uuid.UUID
		deliveryDate sql.NullTime
		status       int
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			franchise_id,
			delivery_address,
			delivery_date,
			status,
			created_at,
			version
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&response.Number,
		&franchiseID,
		&response.DeliveryAddress,
		&deliveryDate,
		&status,
		&response.CreatedAt,
		&response.Version,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.FranchiseID, err = kernel.UUIDFromBytes(franchiseID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if deliveryDate.Valid {
		response.DeliveryDate = deliveryDate.Time
	}
	response.Status = order.Status(status).String()

	lines, lineResponses, err := h.loadLines(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Lines = lineResponses

	result := h.evaluator.Evaluate(lines)
	response.GrandTotal = result.GrandTotal.String()
	response.CompanyTotal = result.CompanyTotal.String()
	response.IndependentTotal = result.IndependentTotal.String()
	response.CompanyShare = result.CompanyShareDisplay()
	response.Conforming = result.Conforming

	seen := make(map[kernel.UUID]bool)
	for _, line := range lines {
		if !seen[line.WarehouseID()] {
			seen[line.WarehouseID()] = true
			response.Warehouses = append(response.Warehouses, line.WarehouseID())
		}
	}

	return response, nil
}

func (h GetOrderQueryHandler) loadLines(
	ctx context.Context,
	orderID kernel.UUID,
) ([]order.Line, []GetOrderLineResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			warehouse_id,
			warehouse_kind,
			quantity,
			unit_price
		FROM order_lines
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var (
		lines     []order.Line
		responses []GetOrderLineResponse
	)

	for rows.Next() {
		var (
			productID   uuid.UUID
			warehouseID uuid.UUID
			kind        int
			quantity    int
			unitPrice   decimal.Decimal
		)

		if err = rows.Scan(&productID, &warehouseID, &kind, &quantity, &unitPrice); err != nil {
			return nil, nil, err
		}

		line, lineErr := restoreLine(productID, warehouseID, kind, quantity, unitPrice)
		if lineErr != nil {
			return nil, nil, lineErr
		}

		lines = append(lines, line)
		responses = append(responses, GetOrderLineResponse{
			ProductID:     line.ProductID(),
			WarehouseID:   line.WarehouseID(),
			WarehouseKind: line.WarehouseKind().String(),
			Quantity:      line.Quantity(),
			UnitPrice:     line.UnitPrice().String(),
			Subtotal:      line.Subtotal().String(),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return lines, responses, nil
}

// restoreLine rebuilds a domain line from its stored columns.
func restoreLine(
	productID, warehouseID uuid.UUID,
	kind, quantity int,
	unitPrice decimal.Decimal,
) (order.Line, error) {
	pid, err := kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return order.Line{}, err
	}
	wid, err := kernel.UUIDFromBytes(warehouseID[:])
	if err != nil {
		return order.Line{}, err
	}
	price, err := kernel.NewMoney(unitPrice)
	if err != nil {
		return order.Line{}, err
	}

	return order.NewLine(pid, wid, catalog.WarehouseKind(kind), quantity, price)
}
