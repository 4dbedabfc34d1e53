// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"supply/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StockRepoFactory provides access to the stock ledger within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// CatalogRepoFactory provides access to warehouses and products within a transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by transitions that move no stock, like preparation.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderStockUoW manages transactions spanning an order and its ledger
	// rows. Used by transitions that commit or release reservations.
	OrderStockUoW interface {
		TxManager
		OrderRepoFactory
		StockRepoFactory
	}

	// OrderStockUoWFactory creates new order+stock unit of work instances.
	OrderStockUoWFactory interface {
		Create() OrderStockUoW
	}

	// UoW manages transactions across orders, the stock ledger, and the
	// catalog. Used by order creation and line editing, which resolve
	// catalog snapshots and reserve stock in the same transaction that
	// persists the order.
	UoW interface {
		TxManager
		OrderRepoFactory
		StockRepoFactory
		CatalogRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
