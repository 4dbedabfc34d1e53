package commands

import (
	"context"

	"supply/internal/core/domain/model/order"
)

// DeliverOrderCommandHandler transitions a prepared order to delivered and
// consumes its reservations: every line's quantity leaves the reserved
// counter for good. The order row and the ledger rows change in one
// transaction.
type DeliverOrderCommandHandler struct {
	uowFactory OrderStockUoWFactory
}

// NewDeliverOrderCommandHandler creates a handler for order delivery.
func NewDeliverOrderCommandHandler(uowFactory OrderStockUoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery command. Delivering an already-delivered
// order is a no-op, so a retry can never consume stock twice.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
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

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Status() == order.Delivered {
		return uow.Commit(ctx)
	}

	if err = aggregate.MarkDelivered(); err != nil {
		return err
	}

	if err = commitLines(ctx, uow.StockRepository(), aggregate.Lines()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
