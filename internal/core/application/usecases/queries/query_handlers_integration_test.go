package queries_test

import (
	"context"
	"testing"
	"time"

	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/adapters/out/postgres/productrepo"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tc_postgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type QueryHandlersTestSuite struct {
	suite.Suite
	container   *tc_postgres.PostgresContainer
	db          *gorm.DB
	orderRepo   *orderrepo.GormOrderRepository
	productRepo *productrepo.GormProductRepository
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tc_postgres.Run(ctx,
		"postgres:15-alpine",
		tc_postgres.WithDatabase("testdb"),
		tc_postgres.WithUsername("testuser"),
		tc_postgres.WithPassword("testpass"),
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.productRepo = productrepo.NewGormProductRepository(db, &mockAggregateTracker{})
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products CASCADE").Error)
}

func (suite *QueryHandlersTestSuite) addOrderWithStatus(total float64, statuses ...order.Status) *order.Order {
	shipping, err := order.NewShipping(order.Pickup, "", "")
	suite.Require().NoError(err)

	item, err := order.NewItem("Croissant", 1, total, "")
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), "Alice Chen", "0912345678", "",
		shipping, []order.Item{item}, "", total)
	suite.Require().NoError(err)

	for _, s := range statuses {
		suite.Require().NoError(o.ChangeStatus(s))
	}

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *QueryHandlersTestSuite) TestGetActiveOrders_ExcludesTerminalStatuses() {
	pending := suite.addOrderWithStatus(100)
	paid := suite.addOrderWithStatus(200, order.Paid)
	suite.addOrderWithStatus(300, order.Paid, order.Processing, order.Shipped, order.Completed)
	suite.addOrderWithStatus(400, order.Cancelled)

	handler := queries.NewGetActiveOrdersQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	ids := map[kernel.UUID]bool{}
	for _, r := range result {
		ids[r.ID] = true
	}
	suite.True(ids[pending.ID()])
	suite.True(ids[paid.ID()])
}

func (suite *QueryHandlersTestSuite) TestGetActiveOrders_EmptyDatabaseReturnsEmptySlice() {
	handler := queries.NewGetActiveOrdersQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueryHandlersTestSuite) TestGetActiveOrders_InvalidQueryReturnsError() {
	handler := queries.NewGetActiveOrdersQueryHandler(suite.db)
	_, err := handler.Handle(context.Background(), queries.GetActiveOrdersQuery{})
	suite.Require().Error(err)
}

func (suite *QueryHandlersTestSuite) TestGetOrdersSummary_CountsByStatusAndSumsRevenue() {
	suite.addOrderWithStatus(100)
	suite.addOrderWithStatus(150)
	suite.addOrderWithStatus(200, order.Paid)
	suite.addOrderWithStatus(300, order.Paid, order.Processing, order.Shipped, order.Completed)
	suite.addOrderWithStatus(500, order.Paid, order.Processing, order.Shipped, order.Completed)

	handler := queries.NewGetOrdersSummaryQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetOrdersSummaryQuery())

	suite.Require().NoError(err)
	suite.Equal(2, result.CountByStatus["PENDING"])
	suite.Equal(1, result.CountByStatus["PAID"])
	suite.Equal(2, result.CountByStatus["COMPLETED"])
	suite.NotContains(result.CountByStatus, "CANCELLED")
	suite.InDelta(800.0, result.CompletedRevenue, 0.001)
}

func (suite *QueryHandlersTestSuite) TestGetProducts_FiltersByAvailability() {
	ctx := context.Background()

	visible, err := product.NewProduct(kernel.NewUUID(), "Bagel", "", 40, product.InStock)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.productRepo.Add(ctx, visible))

	hidden, err := product.NewProduct(kernel.NewUUID(), "Stollen", "seasonal", 300, product.OutOfStock)
	suite.Require().NoError(err)
	hidden.SetAvailability(false)
	suite.Require().NoError(suite.productRepo.Add(ctx, hidden))

	handler := queries.NewGetProductsQueryHandler(suite.db)

	all, err := handler.Handle(ctx, queries.NewGetProductsQuery(false))
	suite.Require().NoError(err)
	suite.Len(all, 2)

	available, err := handler.Handle(ctx, queries.NewGetProductsQuery(true))
	suite.Require().NoError(err)
	suite.Require().Len(available, 1)
	suite.Equal("Bagel", available[0].Name)
	suite.Equal("IN_STOCK", available[0].Stock)
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
