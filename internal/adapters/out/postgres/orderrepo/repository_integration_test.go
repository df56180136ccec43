package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"orderflow/internal/adapters/out/postgres/orderrepo"
	"orderflow/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GormOrderStoreTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	store     *orderrepo.GormOrderStore
}

func (suite *GormOrderStoreTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.store = orderrepo.NewGormOrderStore(db)
}

func (suite *GormOrderStoreTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormOrderStoreTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GormOrderStoreTestSuite) TestAdd_RejectsHandBuiltOrder() {
	var o order.Order

	err := suite.store.Add(context.Background(), 42, &o)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
}

func (suite *GormOrderStoreTestSuite) TestGetOrdersByUser_EmptyUser() {
	orders, err := suite.store.GetOrdersByUser(context.Background(), 42)

	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func (suite *GormOrderStoreTestSuite) TestGetOrdersByUser_RoundTrip() {
	ctx := context.Background()

	o, err := order.RestoreOrder(7, order.TypeLookup, decimal.NewFromFloat(123.45), true,
		order.StatusReviewRequired, order.PriorityHigh)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.store.Add(ctx, 42, o))

	orders, err := suite.store.GetOrdersByUser(ctx, 42)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)

	restored := orders[0]
	suite.Equal(int64(7), restored.ID())
	suite.Equal(order.TypeLookup, restored.Type())
	suite.True(restored.Amount().Equal(decimal.NewFromFloat(123.45)))
	suite.True(restored.Flag())
	suite.Equal(order.StatusReviewRequired, restored.Status())
	suite.Equal(order.PriorityHigh, restored.Priority())
}

func (suite *GormOrderStoreTestSuite) TestGetOrdersByUser_SortedByIDAndScopedToUser() {
	ctx := context.Background()

	for _, id := range []int64{30, 10, 20} {
		o, err := order.NewOrder(id, order.TypeFlag, decimal.NewFromInt(id), false)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.store.Add(ctx, 42, o))
	}

	other, err := order.NewOrder(99, order.TypeFlag, decimal.NewFromInt(1), false)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.store.Add(ctx, 7, other))

	orders, err := suite.store.GetOrdersByUser(ctx, 42)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 3)
	suite.Equal(int64(10), orders[0].ID())
	suite.Equal(int64(20), orders[1].ID())
	suite.Equal(int64(30), orders[2].ID())
}

func (suite *GormOrderStoreTestSuite) TestUpdateOrderStates_UpdatesExistingRows() {
	ctx := context.Background()

	o, err := order.NewOrder(5, order.TypeFlag, decimal.NewFromInt(10), true)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.store.Add(ctx, 42, o))

	failedIDs, err := suite.store.UpdateOrderStates(ctx, []order.PendingUpdate{
		{OrderID: 5, Status: order.StatusCompleted, Priority: order.PriorityHigh},
	})

	suite.Require().NoError(err)
	suite.Empty(failedIDs)

	orders, err := suite.store.GetOrdersByUser(ctx, 42)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(order.StatusCompleted, orders[0].Status())
	suite.Equal(order.PriorityHigh, orders[0].Priority())
}

func (suite *GormOrderStoreTestSuite) TestUpdateOrderStates_ReportsMissingRows() {
	ctx := context.Background()

	o, err := order.NewOrder(5, order.TypeFlag, decimal.NewFromInt(10), true)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.store.Add(ctx, 42, o))

	failedIDs, err := suite.store.UpdateOrderStates(ctx, []order.PendingUpdate{
		{OrderID: 5, Status: order.StatusCompleted, Priority: order.PriorityLow},
		{OrderID: 999, Status: order.StatusPending, Priority: order.PriorityLow},
	})

	suite.Require().NoError(err)
	suite.Equal([]int64{999}, failedIDs)

	// The existing row is still updated.
	orders, err := suite.store.GetOrdersByUser(ctx, 42)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(order.StatusCompleted, orders[0].Status())
}

func (suite *GormOrderStoreTestSuite) TestUpdateOrderStates_EmptyUpdateSet() {
	failedIDs, err := suite.store.UpdateOrderStates(context.Background(), nil)

	suite.Require().NoError(err)
	suite.Empty(failedIDs)
}

func TestGormOrderStoreTestSuite(t *testing.T) {
	suite.Run(t, new(GormOrderStoreTestSuite))
}
