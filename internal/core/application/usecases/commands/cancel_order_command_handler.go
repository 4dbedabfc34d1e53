package commands

import (
	"context"

	"supply/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels a non-terminal order and returns every
// reserved unit to available stock. The order row and the ledger rows
// change in one transaction.
type CancelOrderCommandHandler struct {
	uowFactory OrderStockUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderStockUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command. Cancelling an
// already-cancelled order is a no-op, so a retry can never release stock
// twice.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if aggregate.Status() == order.Cancelled {
		return uow.Commit(ctx)
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = releaseLines(ctx, uow.StockRepository(), aggregate.Lines()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
