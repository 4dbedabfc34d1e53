package commands

import (
	"context"

	"supply/internal/core/domain/model/order"
)

// PrepareOrderCommandHandler transitions a validated order to prepared.
// No stock moves on this transition; the reservation taken at creation
// simply stays in place.
type PrepareOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPrepareOrderCommandHandler creates a handler for order preparation.
func NewPrepareOrderCommandHandler(uowFactory OrderUoWFactory) PrepareOrderCommandHandler {
	return PrepareOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the preparation command. Preparing an already-prepared
// order is a no-op, so clients can safely retry.
func (h PrepareOrderCommandHandler) Handle(ctx context.Context, cmd PrepareOrderCommand) error {
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

	if aggregate.Status() == order.Prepared {
		return uow.Commit(ctx)
	}

	if err = aggregate.MarkPrepared(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
