package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"delivery-api/internal/adapters/out/postgres/orderrepo"
	"delivery-api/internal/adapters/out/postgres/pgtest"
	"delivery-api/internal/core/domain/model/kernel"
	"delivery-api/internal/core/domain/model/order"
	"delivery-api/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	customerID string
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.customerID = suite.insertCustomer("ana@example.com", "12345678901")
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(suite.customerID)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.assertItemCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ZeroValueOrder_Fails() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsAlreadyExists() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(suite.customerID)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	err := suite.repository.Add(ctx, testOrder)

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip_PreservesAggregate() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(suite.customerID)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), loaded.ID())
	suite.Equal(suite.customerID, loaded.CustomerID())
	suite.Equal(order.Created, loaded.Status())
	suite.Equal("74.48", loaded.Total().String())
	suite.WithinDuration(testOrder.CreatedAt(), loaded.CreatedAt(), time.Millisecond)

	suite.Require().Equal(2, loaded.Items().Len())
	first := loaded.Items().At(0)
	suite.Equal("product-a", first.ProductID())
	suite.Equal(2, first.Quantity())
	suite.Equal("29.99", first.UnitPrice().String())
	second := loaded.Items().At(1)
	suite.Equal("product-b", second.ProductID())
	suite.Equal(3, second.Quantity())
	suite.Equal("5.50", second.UnitPrice().String())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID().String())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_BlankID_Fails() {
	_, err := suite.repository.Get(context.Background(), "  ")

	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatus() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(suite.customerID)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.AdvanceTo(order.Shipped))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Shipped, loaded.Status())
	suite.Equal(2, loaded.Items().Len())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	testOrder := suite.createTestOrder(suite.customerID)

	err := suite.repository.Update(context.Background(), testOrder)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_SerializesWriters() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(suite.customerID)
	suite.tracker.On("TrackAggregate", testOrder.ID(), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	tx := suite.database.DB.Begin()
	suite.Require().NoError(tx.Error)
	locked, err := orderrepo.NewGormOrderRepository(tx, suite.tracker).GetForUpdate(ctx, testOrder.ID())
	suite.Require().NoError(err)

	var wg sync.WaitGroup
	acquired := make(chan time.Time, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		other := suite.database.DB.Begin()
		defer other.Rollback()
		if _, lockErr := orderrepo.NewGormOrderRepository(other, suite.tracker).GetForUpdate(ctx, testOrder.ID()); lockErr == nil {
			acquired <- time.Now()
		}
	}()

	time.Sleep(200 * time.Millisecond)
	suite.Require().NoError(locked.AdvanceTo(order.Confirmed))
	suite.Require().NoError(orderrepo.NewGormOrderRepository(tx, suite.tracker).Update(ctx, locked))
	released := time.Now()
	suite.Require().NoError(tx.Commit().Error)

	wg.Wait()
	suite.Require().Len(acquired, 1)
	suite.False((<-acquired).Before(released), "Second lock must wait for the first transaction")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestExistsAndDelete() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(suite.customerID)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	exists, err := suite.repository.Exists(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(exists)

	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID()))

	exists, err = suite.repository.Exists(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.False(exists)
	suite.assertItemCount(0)

	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID()), "Deleting twice is not an error")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_GetByStatus_GetByCustomer() {
	ctx := context.Background()
	otherCustomer := suite.insertCustomer("bob@example.com", "98765432100")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	created := suite.createTestOrder(suite.customerID)
	shipped := suite.createTestOrder(suite.customerID)
	suite.Require().NoError(shipped.AdvanceTo(order.Shipped))
	foreign := suite.createTestOrder(otherCustomer)

	for _, o := range []*order.Order{created, shipped, foreign} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 3)
	for _, o := range all {
		suite.Equal(2, o.Items().Len(), "Items must be preloaded")
	}

	byStatus, err := suite.repository.GetByStatus(ctx, order.Shipped)
	suite.Require().NoError(err)
	suite.Require().Len(byStatus, 1)
	suite.Equal(shipped.ID(), byStatus[0].ID())

	none, err := suite.repository.GetByStatus(ctx, order.Delivered)
	suite.Require().NoError(err)
	suite.Empty(none)

	byCustomer, err := suite.repository.GetByCustomer(ctx, otherCustomer)
	suite.Require().NoError(err)
	suite.Require().Len(byCustomer, 1)
	suite.Equal(foreign.ID(), byCustomer[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByStatus_InvalidStatus_Fails() {
	_, err := suite.repository.GetByStatus(context.Background(), order.Unknown)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

// createTestOrder creates the (A, 2, 29.99), (B, 3, 5.50) order for the given customer.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(customerID string) *order.Order {
	a, err := order.NewItem("product-a", 2, decimal.RequireFromString("29.99"))
	suite.Require().NoError(err)
	b, err := order.NewItem("product-b", 3, decimal.RequireFromString("5.50"))
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID().String(), customerID, []order.Item{a, b})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) insertCustomer(email, document string) string {
	id := kernel.NewUUID().String()
	err := suite.database.DB.Exec(
		"INSERT INTO customers (id, name, email, document) VALUES (?, ?, ?, ?)",
		id, "Test Customer", email, document,
	).Error
	suite.Require().NoError(err)
	return id
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.database.DB.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	suite.Require().NoError(suite.database.DB.Model(&orderrepo.OrderItemDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
