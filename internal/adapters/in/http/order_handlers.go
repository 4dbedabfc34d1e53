package http

import (
	"net/http"
	"time"

	"supply/internal/core/application/usecases/commands"
	"supply/internal/core/application/usecases/queries"
	"supply/internal/core/domain/model/kernel"
	"supply/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders - creates a new supply order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	franchiseID, err := kernel.UUIDFromString(request.FranchiseID)
	if err != nil {
		return respondError(ctx, err)
	}

	lines, err := toLineRequests(request.Lines)
	if err != nil {
		return respondError(ctx, err)
	}

	var deliveryDate time.Time
	if request.DeliveryDate != nil {
		deliveryDate = *request.DeliveryDate
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		orderID, franchiseID, request.DeliveryAddress, deliveryDate, lines)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return s.respondOrder(ctx, orderID, http.StatusCreated)
}

// GetOrder handles GET /api/v1/orders/:orderID - retrieves one order with
// its computed totals and sourcing breakdown.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(result))
}

// EditOrderLines handles PUT /api/v1/orders/:orderID/lines - replaces the
// line set of a pending order.
func (s *Server) EditOrderLines(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request EditOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	lines, err := toLineRequests(request.Lines)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewEditOrderCommand(orderID, lines)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.editOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return s.respondOrder(ctx, orderID, http.StatusOK)
}

// ValidateOrder handles POST /api/v1/orders/:orderID/validate.
func (s *Server) ValidateOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewValidateOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.validateOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// PrepareOrder handles POST /api/v1/orders/:orderID/prepare.
func (s *Server) PrepareOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewPrepareOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.prepareOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// DeliverOrder handles POST /api/v1/orders/:orderID/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewDeliverOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewCancelOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// transition runs one lifecycle move and answers with the resulting order.
func (s *Server) transition(ctx echo.Context, move func(kernel.UUID) error) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = move(orderID); err != nil {
		return respondError(ctx, err)
	}

	return s.respondOrder(ctx, orderID, http.StatusOK)
}

// respondOrder answers a successful write with the order read model, so
// clients see the post-transition state without a second round trip.
func (s *Server) respondOrder(ctx echo.Context, orderID kernel.UUID, status int) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(status, toOrderResponse(result))
}

func toLineRequests(lines []OrderLineRequest) ([]services.LineRequest, error) {
	requests := make([]services.LineRequest, 0, len(lines))

	for _, line := range lines {
		productID, err := kernel.UUIDFromString(line.ProductID)
		if err != nil {
			return nil, err
		}
		warehouseID, err := kernel.UUIDFromString(line.WarehouseID)
		if err != nil {
			return nil, err
		}

		requests = append(requests, services.LineRequest{
			ProductID:   productID,
			WarehouseID: warehouseID,
			Quantity:    line.Quantity,
		})
	}

	return requests, nil
}

func toOrderResponse(result queries.GetOrderQueryResponse) Order {
	response := Order{
		ID:               result.ID.String(),
		Number:           result.Number,
		FranchiseID:      result.FranchiseID.String(),
		DeliveryAddress:  result.DeliveryAddress,
		Status:           result.Status,
		CreatedAt:        result.CreatedAt,
		Version:          result.Version,
		Lines:            make([]OrderLine, 0, len(result.Lines)),
		GrandTotal:       result.GrandTotal,
		CompanyTotal:     result.CompanyTotal,
		IndependentTotal: result.IndependentTotal,
		CompanyShare:     result.CompanyShare,
		Conforming:       result.Conforming,
		Warehouses:       make([]string, 0, len(result.Warehouses)),
	}

	if !result.DeliveryDate.IsZero() {
		deliveryDate := result.DeliveryDate
		response.DeliveryDate = &deliveryDate
	}

	for _, line := range result.Lines {
		response.Lines = append(response.Lines, OrderLine{
			ProductID:     line.ProductID.String(),
			WarehouseID:   line.WarehouseID.String(),
			WarehouseKind: line.WarehouseKind,
			Quantity:      line.Quantity,
			UnitPrice:     line.UnitPrice,
			Subtotal:      line.Subtotal,
		})
	}

	for _, warehouseID := range result.Warehouses {
		response.Warehouses = append(response.Warehouses, warehouseID.String())
	}

	return response
}
