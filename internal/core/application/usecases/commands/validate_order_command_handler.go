package commands

import (
	"context"

	"supply/internal/core/domain/model/order"
	"supply/internal/core/domain/services"
)

// ValidateOrderCommandHandler transitions a pending order to validated.
//
// The sourcing rule is re-checked against the persisted lines before the
// transition, so an order whose lines no longer conform cannot advance.
type ValidateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	evaluator  services.ComplianceEvaluator
}

// NewValidateOrderCommandHandler creates a handler for order validation.
func NewValidateOrderCommandHandler(uowFactory OrderUoWFactory) ValidateOrderCommandHandler {
	return ValidateOrderCommandHandler{
		uowFactory: uowFactory,
		evaluator:  services.NewComplianceEvaluator(),
	}
}

// Handle processes the validation command. Validating an already-validated
// order is a no-op, so clients can safely retry.
func (h ValidateOrderCommandHandler) Handle(ctx context.Context, cmd ValidateOrderCommand) error {
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

	if aggregate.Status() == order.Validated {
		return uow.Commit(ctx)
	}

	if err = h.evaluator.Check(aggregate.Lines()); err != nil {
		return err
	}

	if err = aggregate.MarkValidated(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
