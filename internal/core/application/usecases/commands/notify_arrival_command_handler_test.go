package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/courier"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

func newArrivalHandler(uow *MockUoW, notifier *MockNotifier) commands.NotifyArrivalCommandHandler {
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return commands.NewNotifyArrivalCommandHandler(factory, notifier)
}

func TestNotifyArrivalCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	assigned, err := courier.NewCourier(courierID, "Alice", kernel.NewUUID())
	require.NoError(t, err)
	aggregate := storedOrder(t, kernel.NewUUID(), order.OutForDelivery, &courierID)
	cmd, err := commands.NewNotifyArrivalCommand(aggregate.ID(), courierID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	courierRepo := new(MockCourierRepository)
	courierRepo.On("Get", ctx, courierID).Return(assigned, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CourierRepository").Return(courierRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	notifier := new(MockNotifier)
	notifier.On("PublishCourierArrived",
		aggregate.CustomerID(), aggregate.ID(), aggregate.Token(), "Alice",
	).Once()

	h := newArrivalHandler(uow, notifier)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNotifyArrivalCommandHandler_Handle_WrongCourier(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	aggregate := storedOrder(t, kernel.NewUUID(), order.OutForDelivery, &courierID)
	cmd, err := commands.NewNotifyArrivalCommand(aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	notifier := new(MockNotifier)
	h := newArrivalHandler(uow, notifier)
	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrNotAssigned)
	notifier.AssertNotCalled(t, "PublishCourierArrived",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNotifyArrivalCommandHandler_Handle_NotOutForDelivery(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	aggregate := storedOrder(t, kernel.NewUUID(), order.ReadyForPickup, &courierID)
	cmd, err := commands.NewNotifyArrivalCommand(aggregate.ID(), courierID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	h := newArrivalHandler(uow, new(MockNotifier))
	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}
