package commands_test

import (
	"context"
	"errors"
	"time"

	"github.com/stretchr/testify/mock"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/courier"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByToken(_ context.Context, _ order.Token) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) TokenExists(ctx context.Context, token order.Token) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

type MockOfferingRepository struct{ mock.Mock }

func (m *MockOfferingRepository) Add(ctx context.Context, o *menu.Offering) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOfferingRepository) Update(ctx context.Context, o *menu.Offering) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOfferingRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Offering, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Offering), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetFirstInZone(ctx context.Context, zoneID kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

type MockZoneRepository struct{ mock.Mock }

func (m *MockZoneRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies both commands.OrderUoW and commands.UoW.
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

func (m *MockUoW) OfferingRepository() ports.OfferingRepository {
	args := m.Called()
	return args.Get(0).(ports.OfferingRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUoW) ZoneRepository() ports.ZoneRepository {
	args := m.Called()
	return args.Get(0).(ports.ZoneRepository)
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

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) PublishNewOrder(orderID kernel.UUID, token order.Token, customerID kernel.UUID, itemsCount int, total kernel.Money) {
	m.Called(orderID, token, customerID, itemsCount, total)
}

func (m *MockNotifier) PublishStateChanged(customerID, orderID kernel.UUID, token order.Token, status order.Status) {
	m.Called(customerID, orderID, token, status)
}

func (m *MockNotifier) PublishCourierAssigned(courierID, orderID kernel.UUID, token order.Token, address string) {
	m.Called(courierID, orderID, token, address)
}

func (m *MockNotifier) PublishOrderReady(orderID kernel.UUID, token order.Token) {
	m.Called(orderID, token)
}

func (m *MockNotifier) PublishCourierEnRoute(customerID, orderID kernel.UUID, token order.Token, courierName string) {
	m.Called(customerID, orderID, token, courierName)
}

func (m *MockNotifier) PublishCourierArrived(customerID, orderID kernel.UUID, token order.Token, courierName string) {
	m.Called(customerID, orderID, token, courierName)
}

// fixedClock returns a constant instant.
type fixedClock struct {
	instant time.Time
}

func (c fixedClock) Now() time.Time {
	return c.instant
}

func testClock() fixedClock {
	return fixedClock{instant: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}
