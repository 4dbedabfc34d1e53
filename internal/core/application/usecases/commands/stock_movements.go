package commands

import (
	"context"
	"errors"

	"supply/internal/core/domain/model/catalog"
	"supply/internal/core/domain/model/order"
	"supply/internal/core/domain/model/stock"
	"supply/internal/core/domain/services"
	"supply/internal/core/ports"
	"supply/internal/pkg/errs"
)

// loadCatalogSnapshots resolves every product and warehouse referenced by
// the requests, keyed by UUID string for the order builder.
func loadCatalogSnapshots(
	ctx context.Context,
	catalogRepo ports.CatalogRepository,
	requests []services.LineRequest,
) (map[string]*catalog.Product, map[string]*catalog.Warehouse, error) {
	products := make(map[string]*catalog.Product, len(requests))
	warehouses := make(map[string]*catalog.Warehouse, len(requests))

	for _, req := range requests {
		if _, ok := products[req.ProductID.String()]; !ok {
			product, err := catalogRepo.GetProduct(ctx, req.ProductID)
			if err != nil {
				return nil, nil, err
			}
			products[product.ID().String()] = product
		}
		if _, ok := warehouses[req.WarehouseID.String()]; !ok {
			warehouse, err := catalogRepo.GetWarehouse(ctx, req.WarehouseID)
			if err != nil {
				return nil, nil, err
			}
			warehouses[warehouse.ID().String()] = warehouse
		}
	}

	return products, warehouses, nil
}

// snapshotEntries loads the ledger entries for the requested keys without
// locking them. Missing pairs stay out of the map: the order builder
// reports them as insufficient stock.
func snapshotEntries(
	ctx context.Context,
	stockRepo ports.StockRepository,
	requests []services.LineRequest,
) (map[stock.Key]*stock.Entry, error) {
	entries := make(map[stock.Key]*stock.Entry, len(requests))

	for _, req := range requests {
		key, err := stock.NewKey(req.ProductID, req.WarehouseID)
		if err != nil {
			return nil, err
		}
		if _, ok := entries[key]; ok {
			continue
		}

		entry, err := stockRepo.Get(ctx, key)
		if errors.Is(err, errs.ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		entries[key] = entry
	}

	return entries, nil
}

// reserveLines takes the authoritative reservation for every line: the
// ledger rows are locked in canonical order, each quantity is moved from
// available to reserved, and the counters are written back. Any failure
// leaves the transaction to be rolled back, so reservation is all or
// nothing.
func reserveLines(ctx context.Context, stockRepo ports.StockRepository, lines []order.Line) error {
	return mutateLines(ctx, stockRepo, lines, (*stock.Entry).Reserve)
}

// releaseLines returns every line's reservation to available stock. Used on
// cancellation and when replacing a pending order's line set.
func releaseLines(ctx context.Context, stockRepo ports.StockRepository, lines []order.Line) error {
	return mutateLines(ctx, stockRepo, lines, (*stock.Entry).Release)
}

// commitLines consumes every line's reservation permanently on delivery.
func commitLines(ctx context.Context, stockRepo ports.StockRepository, lines []order.Line) error {
	return mutateLines(ctx, stockRepo, lines, (*stock.Entry).Commit)
}

func mutateLines(
	ctx context.Context,
	stockRepo ports.StockRepository,
	lines []order.Line,
	move func(*stock.Entry, int) error,
) error {
	keys := make([]stock.Key, 0, len(lines))
	for _, l := range lines {
		keys = append(keys, l.StockKey())
	}

	locked, err := stockRepo.GetForUpdate(ctx, keys)
	if err != nil {
		return err
	}

	byKey := make(map[stock.Key]*stock.Entry, len(locked))
	for _, entry := range locked {
		byKey[entry.Key()] = entry
	}

	for _, l := range lines {
		entry, ok := byKey[l.StockKey()]
		if !ok {
			return errs.NewInsufficientStockError(
				l.ProductID().String(), l.WarehouseID().String(), l.Quantity(), 0)
		}
		if err := move(entry, l.Quantity()); err != nil {
			return err
		}
	}

	for _, entry := range byKey {
		if err := stockRepo.Update(ctx, entry); err != nil {
			return err
		}
	}

	return nil
}
