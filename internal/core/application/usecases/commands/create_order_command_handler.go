package commands

import (
	"context"
	"time"

	"supply/internal/core/domain/model/order"
	"supply/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// It is the single write path that turns requested lines into a pending
// order: catalog snapshots, the sourcing-rule gate, order-number
// allocation, and the authoritative stock reservation all happen inside
// one transaction, so a failure at any step leaves no partial state.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, franchiseID, address, date, lines)
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrComplianceRuleViolated):
//	    // company share below 80%
//	case errors.Is(err, errs.ErrInsufficientStock):
//	    // a line requested more than is available
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	builder    services.OrderBuilder
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory spanning the order, stock, and catalog repositories.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		builder:    services.NewOrderBuilder(),
	}
}

// Handle processes the order placement command.
//
// Within a single transaction: resolves catalog snapshots, builds the line
// set (rejecting non-conforming or unfulfillable sets before any lock is
// taken), allocates the day's next order number, persists the pending
// order, and reserves stock under row locks. Rollback on any failure
// releases everything at once.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	stockRepo := uow.StockRepository()
	catalogRepo := uow.CatalogRepository()

	products, warehouses, err := loadCatalogSnapshots(ctx, catalogRepo, cmd.Lines())
	if err != nil {
		return err
	}

	entries, err := snapshotEntries(ctx, stockRepo, cmd.Lines())
	if err != nil {
		return err
	}

	lines, err := h.builder.BuildLines(cmd.Lines(), products, warehouses, entries)
	if err != nil {
		return err
	}

	number, err := orderRepo.NextNumber(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		number,
		cmd.FranchiseID(),
		cmd.DeliveryAddress(),
		cmd.DeliveryDate(),
		lines,
	)
	if err != nil {
		return err
	}

	// The authoritative reservation happens under row locks; the earlier
	// snapshot check only filtered obviously unfulfillable requests.
	if err = reserveLines(ctx, stockRepo, newOrder.Lines()); err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
