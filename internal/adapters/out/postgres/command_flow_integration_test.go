package postgres_test

import (
	"context"
	"strings"
	"time"

	"supply/internal/core/application/usecases/commands"
	"supply/internal/core/domain/model/catalog"
	"supply/internal/core/domain/model/kernel"
	"supply/internal/core/domain/model/order"
	"supply/internal/core/domain/model/stock"
	"supply/internal/core/domain/services"
	"supply/internal/pkg/errs"
)

// Factory adapters narrowing the gorm unit of work to what each command
// handler asks for, as the composition root does.
type (
	funcUoWFactory        func() commands.UoW
	funcOrderUoWFactory   func() commands.OrderUoW
	funcOrderStockFactory func() commands.OrderStockUoW
)

func (f funcUoWFactory) Create() commands.UoW                  { return f() }
func (f funcOrderUoWFactory) Create() commands.OrderUoW        { return f() }
func (f funcOrderStockFactory) Create() commands.OrderStockUoW { return f() }

// TestCommandFlow_CreateEditDeliverRoundTrip drives the real command
// handlers against the database: create a conforming order, replace its
// line set while pending, then walk it to delivered and watch the ledger
// counters at every step.
func (suite *UnitOfWorkIntegrationTestSuite) TestCommandFlow_CreateEditDeliverRoundTrip() {
	ctx := context.Background()

	companyWarehouse, independentWarehouse, cheap, premium := suite.seedCommandCatalog(ctx)

	companyKey, err := stock.NewKey(cheap.ID(), companyWarehouse.ID())
	suite.Require().NoError(err)
	independentKey, err := stock.NewKey(premium.ID(), independentWarehouse.ID())
	suite.Require().NoError(err)
	suite.seedStockAt(ctx, companyKey, 100)
	suite.seedStockAt(ctx, independentKey, 100)

	uowFactory := funcUoWFactory(func() commands.UoW { return suite.factory.Create() })
	orderFactory := funcOrderUoWFactory(func() commands.OrderUoW { return suite.factory.Create() })
	orderStockFactory := funcOrderStockFactory(func() commands.OrderStockUoW { return suite.factory.Create() })

	// Create: 16 x 5.00 company + 1 x 20.00 independent, exactly 80%.
	orderID := kernel.NewUUID()
	createCmd, err := commands.NewCreateOrderCommand(
		orderID, kernel.NewUUID(), "12 rue de la Halle, 75001 Paris", time.Time{},
		[]services.LineRequest{
			{ProductID: cheap.ID(), WarehouseID: companyWarehouse.ID(), Quantity: 16},
			{ProductID: premium.ID(), WarehouseID: independentWarehouse.ID(), Quantity: 1},
		},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(commands.NewCreateOrderCommandHandler(uowFactory).Handle(ctx, createCmd))

	created, err := suite.factory.Create().OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(order.Pending, created.Status())
	suite.True(strings.HasPrefix(created.Number(), "CMD-"))
	suite.Equal("100.00", created.GrandTotal().String())
	suite.assertCounters(ctx, companyKey, 84, 16)
	suite.assertCounters(ctx, independentKey, 99, 1)

	// Edit while pending: grow the company line to 20 units.
	editCmd, err := commands.NewEditOrderCommand(orderID, []services.LineRequest{
		{ProductID: cheap.ID(), WarehouseID: companyWarehouse.ID(), Quantity: 20},
		{ProductID: premium.ID(), WarehouseID: independentWarehouse.ID(), Quantity: 1},
	})
	suite.Require().NoError(err)
	suite.Require().NoError(commands.NewEditOrderCommandHandler(uowFactory).Handle(ctx, editCmd))

	edited, err := suite.factory.Create().OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal("120.00", edited.GrandTotal().String())
	suite.assertCounters(ctx, companyKey, 80, 20)
	suite.assertCounters(ctx, independentKey, 99, 1)

	// Walk the lifecycle to delivered.
	validateCmd, err := commands.NewValidateOrderCommand(orderID)
	suite.Require().NoError(err)
	suite.Require().NoError(commands.NewValidateOrderCommandHandler(orderFactory).Handle(ctx, validateCmd))

	prepareCmd, err := commands.NewPrepareOrderCommand(orderID)
	suite.Require().NoError(err)
	suite.Require().NoError(commands.NewPrepareOrderCommandHandler(orderFactory).Handle(ctx, prepareCmd))

	deliverCmd, err := commands.NewDeliverOrderCommand(orderID)
	suite.Require().NoError(err)
	suite.Require().NoError(commands.NewDeliverOrderCommandHandler(orderStockFactory).Handle(ctx, deliverCmd))

	delivered, err := suite.factory.Create().OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, delivered.Status())

	// Delivery consumed the reservation without returning it.
	suite.assertCounters(ctx, companyKey, 80, 0)
	suite.assertCounters(ctx, independentKey, 99, 0)

	// A delivered order cannot be edited or cancelled.
	err = commands.NewEditOrderCommandHandler(uowFactory).Handle(ctx, editCmd)
	suite.Require().ErrorIs(err, errs.ErrInvalidStateTransition)

	cancelCmd, err := commands.NewCancelOrderCommand(orderID)
	suite.Require().NoError(err)
	err = commands.NewCancelOrderCommandHandler(orderStockFactory).Handle(ctx, cancelCmd)
	suite.Require().ErrorIs(err, errs.ErrInvalidStateTransition)
}

// TestCommandFlow_CancelReturnsStock verifies cancellation releases the
// whole reservation back to availability.
func (suite *UnitOfWorkIntegrationTestSuite) TestCommandFlow_CancelReturnsStock() {
	ctx := context.Background()

	companyWarehouse, independentWarehouse, cheap, premium := suite.seedCommandCatalog(ctx)

	companyKey, err := stock.NewKey(cheap.ID(), companyWarehouse.ID())
	suite.Require().NoError(err)
	independentKey, err := stock.NewKey(premium.ID(), independentWarehouse.ID())
	suite.Require().NoError(err)
	suite.seedStockAt(ctx, companyKey, 50)
	suite.seedStockAt(ctx, independentKey, 50)

	uowFactory := funcUoWFactory(func() commands.UoW { return suite.factory.Create() })
	orderStockFactory := funcOrderStockFactory(func() commands.OrderStockUoW { return suite.factory.Create() })

	orderID := kernel.NewUUID()
	createCmd, err := commands.NewCreateOrderCommand(
		orderID, kernel.NewUUID(), "12 rue de la Halle, 75001 Paris", time.Time{},
		[]services.LineRequest{
			{ProductID: cheap.ID(), WarehouseID: companyWarehouse.ID(), Quantity: 16},
			{ProductID: premium.ID(), WarehouseID: independentWarehouse.ID(), Quantity: 1},
		},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(commands.NewCreateOrderCommandHandler(uowFactory).Handle(ctx, createCmd))
	suite.assertCounters(ctx, companyKey, 34, 16)

	cancelCmd, err := commands.NewCancelOrderCommand(orderID)
	suite.Require().NoError(err)
	suite.Require().NoError(commands.NewCancelOrderCommandHandler(orderStockFactory).Handle(ctx, cancelCmd))

	cancelled, err := suite.factory.Create().OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, cancelled.Status())
	suite.assertCounters(ctx, companyKey, 50, 0)
	suite.assertCounters(ctx, independentKey, 50, 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) seedCommandCatalog(
	ctx context.Context,
) (*catalog.Warehouse, *catalog.Warehouse, *catalog.Product, *catalog.Product) {
	companyWarehouse, err := catalog.NewWarehouse(kernel.NewUUID(), "Halle Centrale", catalog.KindCompany)
	suite.Require().NoError(err)
	independentWarehouse, err := catalog.NewWarehouse(kernel.NewUUID(), "Ferme Dubois", catalog.KindIndependent)
	suite.Require().NoError(err)

	cheapPrice, err := kernel.NewMoneyFromString("5.00")
	suite.Require().NoError(err)
	premiumPrice, err := kernel.NewMoneyFromString("20.00")
	suite.Require().NoError(err)

	cheap, err := catalog.NewProduct(kernel.NewUUID(), "Pommes de terre", cheapPrice, catalog.UnitKilogram)
	suite.Require().NoError(err)
	premium, err := catalog.NewProduct(kernel.NewUUID(), "Truffes", premiumPrice, catalog.UnitPiece)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CatalogRepository().AddWarehouse(ctx, companyWarehouse))
	suite.Require().NoError(uow.CatalogRepository().AddWarehouse(ctx, independentWarehouse))
	suite.Require().NoError(uow.CatalogRepository().AddProduct(ctx, cheap))
	suite.Require().NoError(uow.CatalogRepository().AddProduct(ctx, premium))
	suite.Require().NoError(uow.Commit(ctx))

	return companyWarehouse, independentWarehouse, cheap, premium
}

func (suite *UnitOfWorkIntegrationTestSuite) seedStockAt(ctx context.Context, key stock.Key, available int) {
	entry, err := stock.NewEntry(key, available, stock.DefaultAlertThreshold)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.StockRepository().Add(ctx, entry))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) assertCounters(
	ctx context.Context, key stock.Key, available, reserved int,
) {
	entry, err := suite.factory.Create().StockRepository().Get(ctx, key)
	suite.Require().NoError(err)
	suite.Equal(available, entry.Available())
	suite.Equal(reserved, entry.Reserved())
}
