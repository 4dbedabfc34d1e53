package commands_test

import (
	"testing"
	"time"

	"supply/internal/core/application/usecases/commands"
	"supply/internal/core/domain/model/kernel"
	"supply/internal/core/domain/model/order"
	"supply/internal/core/domain/model/stock"
	"supply/internal/core/domain/services"
	"supply/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// wireCreateMocks sets up a UoW whose catalog and ledger serve the fixture.
func wireCreateMocks(
	f *supplyFixture,
	orderRepo *MockOrderRepository,
	stockRepo *MockStockRepository,
	catalogRepo *MockCatalogRepository,
) (*MockUoW, *MockUoWFactory) {
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("StockRepository").Return(stockRepo)
	uow.On("CatalogRepository").Return(catalogRepo)

	catalogRepo.On("GetProduct", mock.Anything, f.cheapProduct.ID()).Return(f.cheapProduct, nil).Maybe()
	catalogRepo.On("GetProduct", mock.Anything, f.premiumProduct.ID()).Return(f.premiumProduct, nil).Maybe()
	catalogRepo.On("GetWarehouse", mock.Anything, f.companyWarehouse.ID()).Return(f.companyWarehouse, nil).Maybe()
	catalogRepo.On("GetWarehouse", mock.Anything, f.independentWarehouse.ID()).Return(f.independentWarehouse, nil).Maybe()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)
	return uow, factory
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newSupplyFixture(t)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "12 rue de la Halle, 75001 Paris", time.Time{},
		f.conformingRequests(),
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	stockRepo := new(MockStockRepository)
	catalogRepo := new(MockCatalogRepository)
	uow, factory := wireCreateMocks(f, orderRepo, stockRepo, catalogRepo)

	stockRepo.On("Get", mock.Anything, f.companyKey).Return(f.entry(t, f.companyKey, 100), nil).Once()
	stockRepo.On("Get", mock.Anything, f.independentKey).Return(f.entry(t, f.independentKey, 100), nil).Once()

	orderRepo.On("NextNumber", mock.Anything, mock.AnythingOfType("time.Time")).
		Return("CMD-20260830-0001", nil).Once()

	companyLocked := f.entry(t, f.companyKey, 100)
	independentLocked := f.entry(t, f.independentKey, 100)
	stockRepo.On("GetForUpdate", mock.Anything, mock.AnythingOfType("[]stock.Key")).
		Return([]*stock.Entry{companyLocked, independentLocked}, nil).Once()
	stockRepo.On("Update", mock.Anything, mock.AnythingOfType("*stock.Entry")).Return(nil).Twice()

	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			created := args.Get(1).(*order.Order)
			require.Equal(t, "CMD-20260830-0001", created.Number())
			require.Equal(t, order.Pending, created.Status())
			require.Len(t, created.Lines(), 2)
			require.Equal(t, "100.00", created.GrandTotal().String())
		}).
		Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// The reservation moved 16 and 1 units from available to reserved.
	require.Equal(t, 84, companyLocked.Available())
	require.Equal(t, 16, companyLocked.Reserved())
	require.Equal(t, 99, independentLocked.Available())
	require.Equal(t, 1, independentLocked.Reserved())

	orderRepo.AssertExpectations(t)
	stockRepo.AssertExpectations(t)
	catalogRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ComplianceFailure(t *testing.T) {
	ctx := t.Context()
	f := newSupplyFixture(t)

	// 8 company units of 5.00 against 2 independent of 20.00: a 50% split.
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "12 rue de la Halle, 75001 Paris", time.Time{},
		[]services.LineRequest{
			{ProductID: f.cheapProduct.ID(), WarehouseID: f.companyWarehouse.ID(), Quantity: 8},
			{ProductID: f.premiumProduct.ID(), WarehouseID: f.independentWarehouse.ID(), Quantity: 2},
		},
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	stockRepo := new(MockStockRepository)
	catalogRepo := new(MockCatalogRepository)
	uow, factory := wireCreateMocks(f, orderRepo, stockRepo, catalogRepo)

	stockRepo.On("Get", mock.Anything, f.companyKey).Return(f.entry(t, f.companyKey, 100), nil).Once()
	stockRepo.On("Get", mock.Anything, f.independentKey).Return(f.entry(t, f.independentKey, 100), nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrComplianceRuleViolated)

	// Nothing was allocated, reserved, or persisted.
	orderRepo.AssertNotCalled(t, "NextNumber", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	stockRepo.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertCalled(t, "Rollback", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	f := newSupplyFixture(t)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "12 rue de la Halle, 75001 Paris", time.Time{},
		f.conformingRequests(),
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	stockRepo := new(MockStockRepository)
	catalogRepo := new(MockCatalogRepository)
	uow, factory := wireCreateMocks(f, orderRepo, stockRepo, catalogRepo)

	// Only 5 cheap units available; the request wants 16.
	stockRepo.On("Get", mock.Anything, f.companyKey).Return(f.entry(t, f.companyKey, 5), nil).Once()
	stockRepo.On("Get", mock.Anything, f.independentKey).Return(f.entry(t, f.independentKey, 100), nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInsufficientStock)
	stockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_UnstockedPair(t *testing.T) {
	ctx := t.Context()
	f := newSupplyFixture(t)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "12 rue de la Halle, 75001 Paris", time.Time{},
		f.conformingRequests(),
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	stockRepo := new(MockStockRepository)
	catalogRepo := new(MockCatalogRepository)
	_, factory := wireCreateMocks(f, orderRepo, stockRepo, catalogRepo)

	// The company pair has no ledger row at all.
	stockRepo.On("Get", mock.Anything, f.companyKey).
		Return(nil, errs.NewObjectNotFoundError("stock entry", "missing")).Once()
	stockRepo.On("Get", mock.Anything, f.independentKey).Return(f.entry(t, f.independentKey, 100), nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInsufficientStock)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	var cmd commands.CreateOrderCommand // not constructed properly
	factory := new(MockUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
