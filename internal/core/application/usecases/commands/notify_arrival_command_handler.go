package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// NotifyArrivalCommandHandler handles a courier's arrival ping.
// Only the assigned courier may ping, and only while the order is out for
// delivery.
type NotifyArrivalCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

// NewNotifyArrivalCommandHandler creates a handler for arrival pings.
func NewNotifyArrivalCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) NotifyArrivalCommandHandler {
	return NotifyArrivalCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the arrival ping.
func (h *NotifyArrivalCommandHandler) Handle(ctx context.Context, cmd NotifyArrivalCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Courier() == nil || !aggregate.Courier().IsEqual(cmd.CourierID()) {
		return errs.NewNotAssignedError(cmd.OrderID().String(), cmd.CourierID().String())
	}
	if aggregate.Status() != order.OutForDelivery {
		return errs.NewInvalidTransitionError(
			aggregate.ID().String(), aggregate.Status().String(), order.OutForDelivery.String(),
		)
	}

	assigned, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	// The ping writes nothing, but the reads ran in the transaction, so
	// close it explicitly rather than leave it to the rollback.
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.PublishCourierArrived(aggregate.CustomerID(), aggregate.ID(), aggregate.Token(), assigned.Name())
	return nil
}
