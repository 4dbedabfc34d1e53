// Package http exposes the supply-ordering use cases over REST.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"supply/internal/core/application/usecases/commands"
	"supply/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server translates HTTP requests into commands and queries.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	editOrderHandler     commands.EditOrderCommandHandler
	validateOrderHandler commands.ValidateOrderCommandHandler
	prepareOrderHandler  commands.PrepareOrderCommandHandler
	deliverOrderHandler  commands.DeliverOrderCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler              queries.GetOrderQueryHandler
	listWarehousesHandler        queries.ListWarehousesQueryHandler
	listAvailableProductsHandler queries.ListAvailableProductsQueryHandler
	complianceReportHandler      queries.ComplianceReportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	editOrderHandler commands.EditOrderCommandHandler,
	validateOrderHandler commands.ValidateOrderCommandHandler,
	prepareOrderHandler commands.PrepareOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listWarehousesHandler queries.ListWarehousesQueryHandler,
	listAvailableProductsHandler queries.ListAvailableProductsQueryHandler,
	complianceReportHandler queries.ComplianceReportQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		editOrderHandler:             editOrderHandler,
		validateOrderHandler:         validateOrderHandler,
		prepareOrderHandler:          prepareOrderHandler,
		deliverOrderHandler:          deliverOrderHandler,
		cancelOrderHandler:           cancelOrderHandler,
		getOrderHandler:              getOrderHandler,
		listWarehousesHandler:        listWarehousesHandler,
		listAvailableProductsHandler: listAvailableProductsHandler,
		complianceReportHandler:      complianceReportHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/warehouses", s.GetWarehouses)
	api.GET("/warehouses/:warehouseID/products", s.GetWarehouseProducts)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderID", s.GetOrder)
	api.PUT("/orders/:orderID/lines", s.EditOrderLines)
	api.POST("/orders/:orderID/validate", s.ValidateOrder)
	api.POST("/orders/:orderID/prepare", s.PrepareOrder)
	api.POST("/orders/:orderID/deliver", s.DeliverOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)

	api.GET("/reports/compliance", s.GetComplianceReport)
}
