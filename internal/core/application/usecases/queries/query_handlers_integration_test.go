package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"restaurant/internal/adapters/out/postgres/courierrepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/courier"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

type QueryHandlersTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	orderRepo   *orderrepo.GormOrderRepository
	courierRepo *courierrepo.GormCourierRepository
	testCourier *courier.Courier
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&orderrepo.LineExclusionDTO{},
		&courierrepo.CourierDTO{},
	)
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.courierRepo = courierrepo.NewGormCourierRepository(db, &mockAggregateTracker{})

	suite.testCourier, err = courier.NewCourier(kernel.NewUUID(), "Test Courier", kernel.NewUUID())
	suite.Require().NoError(err)
	err = suite.courierRepo.Add(ctx, suite.testCourier)
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) storeOrder(
	customerID kernel.UUID,
	token string,
	status order.Status,
	courierID *kernel.UUID,
	createdAt time.Time,
) *order.Order {
	tok, err := order.NewToken(token)
	suite.Require().NoError(err)

	price, err := kernel.NewMoneyFromString("12.50")
	suite.Require().NoError(err)
	line, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), 2, price, nil)
	suite.Require().NoError(err)

	destination := order.NewDestination("https://maps.example.com/p/abc", nil, nil, "ring twice")

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), tok, customerID, kernel.NewUUID(), destination,
		order.PaymentCash, false, status, courierID,
		[]*order.Line{line}, createdAt,
		nil, nil, nil, nil,
	)
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *QueryHandlersTestSuite) TestGetCustomerOrders_EmptyDatabase_ReturnsEmptySlice() {
	handler := queries.NewGetCustomerOrdersQueryHandler(suite.db)
	query, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueryHandlersTestSuite) TestGetCustomerOrders_ReturnsOwnOrdersNewestFirst() {
	customerID := kernel.NewUUID()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	older := suite.storeOrder(customerID, "AAAA1111", order.Pending, nil, base)
	newer := suite.storeOrder(customerID, "BBBB2222", order.Confirmed, nil, base.Add(time.Hour))
	suite.storeOrder(kernel.NewUUID(), "CCCC3333", order.Pending, nil, base)

	handler := queries.NewGetCustomerOrdersQueryHandler(suite.db)
	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(newer.ID()))
	suite.True(result[1].ID.IsEqual(older.ID()))
	suite.Equal("Confirmed", result[0].Status)
	suite.Equal("BBBB2222", result[0].Token)
	suite.Equal(1, result[0].ItemsCount)
	suite.True(result[0].Total.Equal(decimal.RequireFromString("25.00")))
}

func (suite *QueryHandlersTestSuite) TestTrackOrder_ReturnsStatusAndCourierName() {
	customerID := kernel.NewUUID()
	courierID := suite.testCourier.ID()
	suite.storeOrder(customerID, "TRCK0001", order.OutForDelivery, &courierID,
		time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	handler := queries.NewTrackOrderQueryHandler(suite.db)
	token, err := order.NewToken("TRCK0001")
	suite.Require().NoError(err)
	query, err := queries.NewTrackOrderQuery(token)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("TRCK0001", result.Token)
	suite.Equal("OutForDelivery", result.Status)
	suite.Equal("Test Courier", result.CourierName)
}

func (suite *QueryHandlersTestSuite) TestTrackOrder_UnknownToken_ReturnsNotFound() {
	handler := queries.NewTrackOrderQueryHandler(suite.db)
	token, err := order.NewToken("NOPE0000")
	suite.Require().NoError(err)
	query, err := queries.NewTrackOrderQuery(token)
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().Error(err)
}

func (suite *QueryHandlersTestSuite) TestKitchenQueue_ReturnsConfirmedAndInKitchenOldestFirst() {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	first := suite.storeOrder(kernel.NewUUID(), "KTCH0001", order.Confirmed, nil, base)
	second := suite.storeOrder(kernel.NewUUID(), "KTCH0002", order.InKitchen, nil, base.Add(time.Minute))
	suite.storeOrder(kernel.NewUUID(), "KTCH0003", order.Pending, nil, base)
	suite.storeOrder(kernel.NewUUID(), "KTCH0004", order.Delivered, nil, base)

	handler := queries.NewGetKitchenQueueQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetKitchenQueueQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(first.ID()))
	suite.True(result[1].ID.IsEqual(second.ID()))
	suite.Require().Len(result[0].Lines, 1)
	suite.Equal(2, result[0].Lines[0].Quantity)
}

func (suite *QueryHandlersTestSuite) TestKitchenQueue_CarriesLineExclusions() {
	tok, err := order.NewToken("KTCH0005")
	suite.Require().NoError(err)
	price, err := kernel.NewMoneyFromString("9.00")
	suite.Require().NoError(err)
	excluded := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	line, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), 1, price, excluded)
	suite.Require().NoError(err)

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), tok, kernel.NewUUID(), kernel.NewUUID(),
		order.NewDestination("https://maps.example.com/p/xyz", nil, nil, ""),
		order.PaymentQR, false, order.Confirmed, nil,
		[]*order.Line{line}, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		nil, nil, nil, nil,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))

	handler := queries.NewGetKitchenQueueQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetKitchenQueueQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Require().Len(result[0].Lines, 1)
	suite.Len(result[0].Lines[0].ExclusionIDs, 2)
}

func (suite *QueryHandlersTestSuite) TestCourierDeliveries_ReturnsActiveAssignmentsOnly() {
	courierID := suite.testCourier.ID()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ready := suite.storeOrder(kernel.NewUUID(), "CRDL0001", order.ReadyForPickup, &courierID, base)
	enRoute := suite.storeOrder(kernel.NewUUID(), "CRDL0002", order.OutForDelivery, &courierID, base.Add(time.Minute))
	suite.storeOrder(kernel.NewUUID(), "CRDL0003", order.Delivered, &courierID, base)
	suite.storeOrder(kernel.NewUUID(), "CRDL0004", order.ReadyForPickup, nil, base)

	handler := queries.NewGetCourierDeliveriesQueryHandler(suite.db)
	query, err := queries.NewGetCourierDeliveriesQuery(courierID)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(ready.ID()))
	suite.True(result[1].ID.IsEqual(enRoute.ID()))
	suite.Equal("https://maps.example.com/p/abc", result[0].MapsLink)
	suite.Equal("ring twice", result[0].AddressNote)
	suite.Equal("Cash", result[0].Payment)
}

func (suite *QueryHandlersTestSuite) TestInvalidQueries_ReturnError() {
	ctx := context.Background()

	_, err := queries.NewGetCustomerOrdersQueryHandler(suite.db).Handle(ctx, queries.GetCustomerOrdersQuery{})
	suite.Require().Error(err)

	_, err = queries.NewTrackOrderQueryHandler(suite.db).Handle(ctx, queries.TrackOrderQuery{})
	suite.Require().Error(err)

	_, err = queries.NewGetKitchenQueueQueryHandler(suite.db).Handle(ctx, queries.GetKitchenQueueQuery{})
	suite.Require().Error(err)

	_, err = queries.NewGetCourierDeliveriesQueryHandler(suite.db).Handle(ctx, queries.GetCourierDeliveriesQuery{})
	suite.Require().Error(err)
}

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
