package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	postgres_adapter "restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/postgres/courierrepo"
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/zonerepo"
	"restaurant/internal/core/domain/model/courier"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/role"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&orderrepo.LineExclusionDTO{},
		&menurepo.OfferingDTO{},
		&courierrepo.CourierDTO{},
		&zonerepo.ZoneDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, offerings, couriers, zones CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.OfferingRepository())
	suite.NotNil(uow1.CourierRepository())
	suite.NotNil(uow1.ZoneRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.T(), "UOWT0001")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PlacementWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Seed an offering and reserve stock for the placement.
	offering := createTestOffering(suite.T(), 5)
	err = uow.OfferingRepository().Add(ctx, offering)
	suite.Require().NoError(err)

	err = offering.Reserve(2)
	suite.Require().NoError(err)
	err = uow.OfferingRepository().Update(ctx, offering)
	suite.Require().NoError(err)

	testCourier := createTestCourier(suite.T())
	err = uow.CourierRepository().Add(ctx, testCourier)
	suite.Require().NoError(err)

	testOrder := createTestOrder(suite.T(), "UOWT0002")
	err = testOrder.AssignCourier(testCourier.ID())
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrievedOrder.Courier())
	suite.True(retrievedOrder.Courier().IsEqual(testCourier.ID()))

	retrievedOffering, err := newUow.OfferingRepository().Get(ctx, offering.ID())
	suite.Require().NoError(err)
	suite.Equal(3, retrievedOffering.Available())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.T(), "UOWT0003")
	testCourier := createTestCourier(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.CourierRepository().Add(ctx, testCourier)
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.CourierRepository().Get(ctx, testCourier.ID())
	suite.Require().Error(err, "Courier should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder(suite.T(), "ISOL0001")
	order2 := createTestOrder(suite.T(), "ISOL0002")

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)
	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")
	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")
	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.T(), "AUTO0001")

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CancellationRestocksWithinTransaction() {
	ctx := context.Background()

	// Seed an offering and an order whose single line reserves from it.
	offering := createTestOffering(suite.T(), 3)
	seedUow := suite.factory.Create()
	err := seedUow.OfferingRepository().Add(ctx, offering)
	suite.Require().NoError(err)

	price, err := kernel.NewMoneyFromString("8.00")
	suite.Require().NoError(err)
	line, err := order.NewLine(kernel.NewUUID(), offering.ID(), 2, price, nil)
	suite.Require().NoError(err)
	token, err := order.NewToken("CNCL0001")
	suite.Require().NoError(err)
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), token, kernel.NewUUID(), kernel.NewUUID(),
		order.NewDestination("https://maps.example.com/p/q", nil, nil, ""),
		order.PaymentQR, []*order.Line{line},
		time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	err = seedUow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Cancel and restock atomically.
	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	aggregate, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	err = aggregate.ChangeStatus(role.Admin, kernel.NewUUID(), order.Cancelled,
		time.Date(2025, 6, 1, 12, 5, 0, 0, time.UTC))
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, aggregate)
	suite.Require().NoError(err)

	stocked, err := uow.OfferingRepository().Get(ctx, offering.ID())
	suite.Require().NoError(err)
	err = stocked.Release(2)
	suite.Require().NoError(err)
	err = uow.OfferingRepository().Update(ctx, stocked)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	final, err := newUow.OfferingRepository().Get(ctx, offering.ID())
	suite.Require().NoError(err)
	suite.Equal(5, final.Available())

	cancelled, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, cancelled.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentReservationsNeverOversell() {
	ctx := context.Background()

	offering := createTestOffering(suite.T(), 5)
	seedUow := suite.factory.Create()
	err := seedUow.OfferingRepository().Add(ctx, offering)
	suite.Require().NoError(err)

	reserve := func() error {
		uow := suite.factory.Create()
		if beginErr := uow.Begin(ctx); beginErr != nil {
			return beginErr
		}
		defer func() { _ = uow.Rollback(ctx) }()

		stocked, getErr := uow.OfferingRepository().Get(ctx, offering.ID())
		if getErr != nil {
			return getErr
		}
		if reserveErr := stocked.Reserve(3); reserveErr != nil {
			return reserveErr
		}
		if updateErr := uow.OfferingRepository().Update(ctx, stocked); updateErr != nil {
			return updateErr
		}
		return uow.Commit(ctx)
	}

	results := make(chan error, 2)
	for range 2 {
		go func() { results <- reserve() }()
	}
	first, second := <-results, <-results

	// The row lock serializes the reads: whichever transaction loses the
	// race sees the already-decremented counter and fails its reservation.
	if first == nil {
		suite.Require().ErrorIs(second, errs.ErrInsufficientStock)
	} else {
		suite.Require().NoError(second)
		suite.Require().ErrorIs(first, errs.ErrInsufficientStock)
	}

	final, err := suite.factory.Create().OfferingRepository().Get(ctx, offering.ID())
	suite.Require().NoError(err)
	suite.Equal(2, final.Available())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ZoneLookupInsideTransaction() {
	ctx := context.Background()

	zoneID := kernel.NewUUID()
	err := suite.db.Create(&zonerepo.ZoneDTO{ID: zoneID.Bytes(), Name: "Old Town"}).Error
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	exists, err := uow.ZoneRepository().Exists(ctx, zoneID)
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = uow.ZoneRepository().Exists(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(exists)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

// createTestOrder creates a valid pending order for testing purposes.
func createTestOrder(t *testing.T, token string) *order.Order {
	t.Helper()

	tok, err := order.NewToken(token)
	if err != nil {
		t.Fatal(err)
	}
	price, err := kernel.NewMoneyFromString("10.00")
	if err != nil {
		t.Fatal(err)
	}
	line, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), 1, price, nil)
	if err != nil {
		t.Fatal(err)
	}

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), tok, kernel.NewUUID(), kernel.NewUUID(),
		order.NewDestination("https://maps.example.com/p/abc", nil, nil, ""),
		order.PaymentCash, []*order.Line{line},
		time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatal(err)
	}
	return testOrder
}

// createTestCourier creates a valid courier for testing purposes.
func createTestCourier(t *testing.T) *courier.Courier {
	t.Helper()

	testCourier, err := courier.NewCourier(kernel.NewUUID(), "Test Courier", kernel.NewUUID())
	if err != nil {
		t.Fatal(err)
	}
	return testCourier
}

// createTestOffering creates a published offering with the given stock.
func createTestOffering(t *testing.T, available int) *menu.Offering {
	t.Helper()

	price, err := kernel.NewMoneyFromString("10.00")
	if err != nil {
		t.Fatal(err)
	}
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	offering, err := menu.NewOffering(kernel.NewUUID(), day, price, available, true)
	if err != nil {
		t.Fatal(err)
	}
	return offering
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
