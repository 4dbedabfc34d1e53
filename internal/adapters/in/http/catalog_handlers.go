package http

import (
	"net/http"

	"supply/internal/core/application/usecases/queries"
	"supply/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetWarehouses handles GET /api/v1/warehouses - retrieves all warehouses,
// company ones first.
func (s *Server) GetWarehouses(ctx echo.Context) error {
	query := queries.NewListWarehousesQuery()

	warehouses, err := s.listWarehousesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Warehouse, len(warehouses))
	for i, warehouse := range warehouses {
		response[i] = Warehouse{
			ID:        warehouse.ID.String(),
			Name:      warehouse.Name,
			Kind:      warehouse.Kind,
			IsCompany: warehouse.IsCompany,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWarehouseProducts handles GET /api/v1/warehouses/:warehouseID/products -
// retrieves the products a warehouse can currently supply.
func (s *Server) GetWarehouseProducts(ctx echo.Context) error {
	warehouseID, err := kernel.UUIDFromString(ctx.Param("warehouseID"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListAvailableProductsQuery(warehouseID)
	if err != nil {
		return respondError(ctx, err)
	}

	products, err := s.listAvailableProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]WarehouseProduct, len(products))
	for i, product := range products {
		response[i] = WarehouseProduct{
			ProductID: product.ProductID.String(),
			Name:      product.Name,
			Unit:      product.Unit,
			UnitPrice: product.UnitPrice,
			Available: product.Available,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetComplianceReport handles GET /api/v1/reports/compliance - the per-order
// 80/20 sourcing report.
func (s *Server) GetComplianceReport(ctx echo.Context) error {
	query := queries.NewComplianceReportQuery()

	report, err := s.complianceReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ComplianceReportEntry, len(report))
	for i, entry := range report {
		response[i] = ComplianceReportEntry{
			OrderID:          entry.OrderID.String(),
			Number:           entry.Number,
			Status:           entry.Status,
			CompanyTotal:     entry.CompanyTotal,
			IndependentTotal: entry.IndependentTotal,
			GrandTotal:       entry.GrandTotal,
			CompanyShare:     entry.CompanyShare,
			Conforming:       entry.Conforming,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
