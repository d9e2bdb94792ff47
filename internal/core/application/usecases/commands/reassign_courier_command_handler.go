package commands

import (
	"context"
)

// ReassignCourierCommandHandler handles manual courier (re)assignment.
// The courier must exist; assignment on a delivered or cancelled order is
// rejected by the aggregate. The new courier is notified after commit.
type ReassignCourierCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

// NewReassignCourierCommandHandler creates a handler for courier reassignment.
func NewReassignCourierCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) ReassignCourierCommandHandler {
	return ReassignCourierCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the reassignment command.
func (h *ReassignCourierCommandHandler) Handle(ctx context.Context, cmd ReassignCourierCommand) error {
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

	assigned, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignCourier(assigned.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.PublishCourierAssigned(assigned.ID(), aggregate.ID(), aggregate.Token(), aggregate.Destination().MapsLink())
	return nil
}
