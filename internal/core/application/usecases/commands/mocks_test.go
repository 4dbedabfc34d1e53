package commands_test

import (
	"context"
	"testing"
	"time"

	"supply/internal/core/application/usecases/commands"
	"supply/internal/core/domain/model/catalog"
	"supply/internal/core/domain/model/kernel"
	"supply/internal/core/domain/model/order"
	"supply/internal/core/domain/model/stock"
	"supply/internal/core/domain/services"
	"supply/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByFranchise(ctx context.Context, franchiseID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, franchiseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) NextNumber(ctx context.Context, day time.Time) (string, error) {
	args := m.Called(ctx, day)
	return args.String(0), args.Error(1)
}

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) Add(ctx context.Context, entry *stock.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockStockRepository) Update(ctx context.Context, entry *stock.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockStockRepository) Get(ctx context.Context, key stock.Key) (*stock.Entry, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Entry), args.Error(1)
}

func (m *MockStockRepository) GetForUpdate(ctx context.Context, keys []stock.Key) ([]*stock.Entry, error) {
	args := m.Called(ctx, keys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stock.Entry), args.Error(1)
}

func (m *MockStockRepository) GetAllByWarehouse(ctx context.Context, warehouseID kernel.UUID) ([]*stock.Entry, error) {
	args := m.Called(ctx, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stock.Entry), args.Error(1)
}

func (m *MockStockRepository) GetAllBelowThreshold(ctx context.Context) ([]*stock.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stock.Entry), args.Error(1)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) AddWarehouse(ctx context.Context, warehouse *catalog.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockCatalogRepository) AddProduct(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockCatalogRepository) GetWarehouse(ctx context.Context, id kernel.UUID) (*catalog.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Warehouse), args.Error(1)
}

func (m *MockCatalogRepository) GetProduct(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockCatalogRepository) GetAllWarehouses(ctx context.Context) ([]*catalog.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Warehouse), args.Error(1)
}

// MockUoW satisfies every unit of work interface the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderStockUoWFactory struct{ mock.Mock }

func (m *MockOrderStockUoWFactory) Create() commands.OrderStockUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderStockUoW)
}

// supplyFixture wires a company and an independent warehouse, two products,
// and ledger entries for the common handler scenarios.
type supplyFixture struct {
	companyWarehouse     *catalog.Warehouse
	independentWarehouse *catalog.Warehouse
	cheapProduct         *catalog.Product // 5.00
	premiumProduct       *catalog.Product // 20.00

	companyKey     stock.Key
	independentKey stock.Key
}

func newSupplyFixture(t *testing.T) *supplyFixture {
	t.Helper()

	f := &supplyFixture{}

	var err error
	f.companyWarehouse, err = catalog.NewWarehouse(kernel.NewUUID(), "Halle Centrale", catalog.KindCompany)
	require.NoError(t, err)
	f.independentWarehouse, err = catalog.NewWarehouse(kernel.NewUUID(), "Ferme Dubois", catalog.KindIndependent)
	require.NoError(t, err)

	cheapPrice, err := kernel.NewMoneyFromString("5.00")
	require.NoError(t, err)
	premiumPrice, err := kernel.NewMoneyFromString("20.00")
	require.NoError(t, err)
	f.cheapProduct, err = catalog.NewProduct(kernel.NewUUID(), "Pommes de terre", cheapPrice, "kg")
	require.NoError(t, err)
	f.premiumProduct, err = catalog.NewProduct(kernel.NewUUID(), "Truffes", premiumPrice, "kg")
	require.NoError(t, err)

	f.companyKey, err = stock.NewKey(f.cheapProduct.ID(), f.companyWarehouse.ID())
	require.NoError(t, err)
	f.independentKey, err = stock.NewKey(f.premiumProduct.ID(), f.independentWarehouse.ID())
	require.NoError(t, err)

	return f
}

func (f *supplyFixture) line(t *testing.T, product *catalog.Product, warehouse *catalog.Warehouse, quantity int) order.Line {
	t.Helper()
	l, err := order.NewLine(product.ID(), warehouse.ID(), warehouse.Kind(), quantity, product.UnitPrice())
	require.NoError(t, err)
	return l
}

func (f *supplyFixture) entry(t *testing.T, key stock.Key, available int) *stock.Entry {
	t.Helper()
	entry, err := stock.NewEntry(key, available, stock.DefaultAlertThreshold)
	require.NoError(t, err)
	return entry
}

// conformingRequests returns 16 cheap company units and 1 premium
// independent unit: an exactly 80% company split.
func (f *supplyFixture) conformingRequests() []services.LineRequest {
	return []services.LineRequest{
		{ProductID: f.cheapProduct.ID(), WarehouseID: f.companyWarehouse.ID(), Quantity: 16},
		{ProductID: f.premiumProduct.ID(), WarehouseID: f.independentWarehouse.ID(), Quantity: 1},
	}
}

// pendingOrder builds a persisted-looking pending order over the fixture's
// stock keys.
func (f *supplyFixture) pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	return f.orderInStatus(t, order.Pending)
}

func (f *supplyFixture) orderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	line1, err := order.NewLine(
		f.cheapProduct.ID(), f.companyWarehouse.ID(), catalog.KindCompany, 16, f.cheapProduct.UnitPrice())
	require.NoError(t, err)
	line2, err := order.NewLine(
		f.premiumProduct.ID(), f.independentWarehouse.ID(), catalog.KindIndependent, 1, f.premiumProduct.UnitPrice())
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(),
		"CMD-20260830-0001",
		kernel.NewUUID(),
		"12 rue de la Halle, 75001 Paris",
		time.Time{},
		status,
		time.Now().UTC(),
		1,
		[]order.Line{line1, line2},
	)
	require.NoError(t, err)
	return aggregate
}
