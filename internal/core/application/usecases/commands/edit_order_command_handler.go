package commands

import (
	"context"

	"supply/internal/core/domain/model/order"
	"supply/internal/core/domain/model/stock"
	"supply/internal/core/domain/services"
	"supply/internal/core/ports"
	"supply/internal/pkg/errs"
)

// EditOrderCommandHandler replaces a pending order's line set. The old
// reservation is released and the new one taken in the same transaction,
// with the union of old and new ledger rows locked in a single pass so the
// swap serializes against concurrent reservations.
type EditOrderCommandHandler struct {
	uowFactory UoWFactory
	builder    services.OrderBuilder
}

// NewEditOrderCommandHandler creates a handler for order line editing.
func NewEditOrderCommandHandler(uowFactory UoWFactory) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
		builder:    services.NewOrderBuilder(),
	}
}

// Handle processes the edit command.
//
// Only pending orders can be edited. The replacement set is validated like
// a new order: catalog snapshots are re-taken, quantities are checked
// against availability as it would be after the old reservation is
// released, and the sourcing rule is re-applied to the whole set.
func (h EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
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

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Status().ValidateEdit(); err != nil {
		return err
	}

	oldLines := aggregate.Lines()

	products, warehouses, err := loadCatalogSnapshots(ctx, uow.CatalogRepository(), cmd.Lines())
	if err != nil {
		return err
	}

	// The soft availability check must see the ledger as it will look
	// once the old reservation is gone, or shifting quantity within the
	// same line would spuriously fail.
	entries, err := snapshotEntries(ctx, stockRepo, cmd.Lines())
	if err != nil {
		return err
	}
	for _, l := range oldLines {
		if entry, ok := entries[l.StockKey()]; ok {
			if err = entry.Release(l.Quantity()); err != nil {
				return err
			}
		}
	}

	newLines, err := h.builder.BuildLines(cmd.Lines(), products, warehouses, entries)
	if err != nil {
		return err
	}

	if err = h.swapReservations(ctx, stockRepo, oldLines, newLines); err != nil {
		return err
	}

	if err = aggregate.ReplaceLines(newLines); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// swapReservations locks the union of old and new ledger rows once, then
// releases the old quantities and reserves the new ones. A single lock
// pass over the union keeps the canonical lock order intact; two separate
// passes could interleave with another transaction and deadlock.
func (h EditOrderCommandHandler) swapReservations(
	ctx context.Context,
	stockRepo ports.StockRepository,
	oldLines, newLines []order.Line,
) error {
	union := make([]stock.Key, 0, len(oldLines)+len(newLines))
	seen := make(map[stock.Key]bool, len(oldLines)+len(newLines))
	for _, l := range oldLines {
		if !seen[l.StockKey()] {
			seen[l.StockKey()] = true
			union = append(union, l.StockKey())
		}
	}
	for _, l := range newLines {
		if !seen[l.StockKey()] {
			seen[l.StockKey()] = true
			union = append(union, l.StockKey())
		}
	}

	locked, err := stockRepo.GetForUpdate(ctx, union)
	if err != nil {
		return err
	}

	byKey := make(map[stock.Key]*stock.Entry, len(locked))
	for _, entry := range locked {
		byKey[entry.Key()] = entry
	}

	for _, l := range oldLines {
		if err = byKey[l.StockKey()].Release(l.Quantity()); err != nil {
			return err
		}
	}
	for _, l := range newLines {
		entry, ok := byKey[l.StockKey()]
		if !ok {
			return errs.NewInsufficientStockError(
				l.ProductID().String(), l.WarehouseID().String(), l.Quantity(), 0)
		}
		if err = entry.Reserve(l.Quantity()); err != nil {
			return err
		}
	}

	for _, entry := range byKey {
		if err = stockRepo.Update(ctx, entry); err != nil {
			return err
		}
	}

	return nil
}
