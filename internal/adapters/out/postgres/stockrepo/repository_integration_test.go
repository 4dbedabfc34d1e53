package stockrepo_test

import (
	"context"
	"testing"
	"time"

	"supply/internal/adapters/out/postgres/stockrepo"
	"supply/internal/core/domain/model/kernel"
	"supply/internal/core/domain/model/stock"
	"supply/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// StockRepositoryIntegrationTestSuite provides integration tests for the
// stock ledger repository using PostgreSQL containers.
type StockRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *stockrepo.GormStockRepository
	tracker    *MockAggregateTracker
}

func (suite *StockRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&stockrepo.EntryDTO{}))
}

func (suite *StockRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE stock_entries").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = stockrepo.NewGormStockRepository(suite.db, suite.tracker)
}

func (suite *StockRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StockRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	entry := suite.createEntry(120, 15)
	suite.tracker.On("TrackAggregate", entry.Key().ProductID, entry).Once()

	suite.Require().NoError(suite.repository.Add(ctx, entry))

	retrieved, err := suite.repository.Get(ctx, entry.Key())
	suite.Require().NoError(err)
	suite.True(retrieved.Key().IsEqual(entry.Key()))
	suite.Equal(120, retrieved.Available())
	suite.Equal(0, retrieved.Reserved())
	suite.Equal(15, retrieved.AlertThreshold())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StockRepositoryIntegrationTestSuite) TestGet_MissingEntry_ReturnsNotFoundError() {
	ctx := context.Background()

	key, err := stock.NewKey(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.repository.Get(ctx, key)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *StockRepositoryIntegrationTestSuite) TestUpdate_PersistsMutatedCounters() {
	ctx := context.Background()

	entry := suite.createEntry(50, 10)
	suite.tracker.On("TrackAggregate", entry.Key().ProductID, entry).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, entry))

	suite.Require().NoError(entry.Reserve(20))
	suite.Require().NoError(suite.repository.Update(ctx, entry))

	retrieved, err := suite.repository.Get(ctx, entry.Key())
	suite.Require().NoError(err)
	suite.Equal(30, retrieved.Available())
	suite.Equal(20, retrieved.Reserved())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StockRepositoryIntegrationTestSuite) TestUpdate_MissingEntry_ReturnsNotFoundError() {
	ctx := context.Background()

	entry := suite.createEntry(50, 10)
	err := suite.repository.Update(ctx, entry)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StockRepositoryIntegrationTestSuite) TestGetForUpdate_ReturnsEntriesInCanonicalOrder() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	keys := make([]stock.Key, 0, 3)
	for range 3 {
		entry := suite.createEntry(10, 5)
		suite.Require().NoError(suite.repository.Add(ctx, entry))
		keys = append(keys, entry.Key())
	}

	// Pass keys in reverse canonical order; the repository must still
	// return them sorted.
	stock.SortKeys(keys)
	reversed := []stock.Key{keys[2], keys[0], keys[1]}

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	repo := stockrepo.NewGormStockRepository(tx, suite.tracker)
	entries, err := repo.GetForUpdate(ctx, reversed)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 3)

	for i, entry := range entries {
		suite.True(entry.Key().IsEqual(keys[i]))
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StockRepositoryIntegrationTestSuite) TestGetForUpdate_MissingKey_ReturnsNotFoundError() {
	ctx := context.Background()

	key, err := stock.NewKey(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	repo := stockrepo.NewGormStockRepository(tx, suite.tracker)
	_, err = repo.GetForUpdate(ctx, []stock.Key{key})

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *StockRepositoryIntegrationTestSuite) TestGetAllByWarehouse_SkipsExhaustedEntries() {
	ctx := context.Background()

	warehouseID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	stocked := suite.createEntryForWarehouse(warehouseID, 40, 10)
	suite.Require().NoError(suite.repository.Add(ctx, stocked))

	exhausted := suite.createEntryForWarehouse(warehouseID, 0, 10)
	suite.Require().NoError(suite.repository.Add(ctx, exhausted))

	otherWarehouse := suite.createEntry(40, 10)
	suite.Require().NoError(suite.repository.Add(ctx, otherWarehouse))

	entries, err := suite.repository.GetAllByWarehouse(ctx, warehouseID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.True(entries[0].Key().IsEqual(stocked.Key()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StockRepositoryIntegrationTestSuite) TestGetAllBelowThreshold() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	low := suite.createEntry(5, 10)
	suite.Require().NoError(suite.repository.Add(ctx, low))

	atThreshold := suite.createEntry(10, 10)
	suite.Require().NoError(suite.repository.Add(ctx, atThreshold))

	healthy := suite.createEntry(50, 10)
	suite.Require().NoError(suite.repository.Add(ctx, healthy))

	entries, err := suite.repository.GetAllBelowThreshold(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	for _, entry := range entries {
		suite.True(entry.IsLow())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StockRepositoryIntegrationTestSuite) createEntry(available, threshold int) *stock.Entry {
	return suite.createEntryForWarehouse(kernel.NewUUID(), available, threshold)
}

func (suite *StockRepositoryIntegrationTestSuite) createEntryForWarehouse(
	warehouseID kernel.UUID, available, threshold int,
) *stock.Entry {
	key, err := stock.NewKey(kernel.NewUUID(), warehouseID)
	suite.Require().NoError(err)
	entry, err := stock.NewEntry(key, available, threshold)
	suite.Require().NoError(err)
	return entry
}

func TestStockRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StockRepositoryIntegrationTestSuite))
}
