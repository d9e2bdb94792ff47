package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/role"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// CancelOrderCommandHandler handles a customer withdrawing their own order.
//
// Unlike an admin cancellation, which keeps the cancelled order on record,
// a customer withdrawal deletes the order outright. Both paths return the
// reserved portions to stock. The state machine still gates the operation,
// so a withdrawal past Pending fails the same way a customer cancellation
// would.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewCancelOrderCommandHandler creates a handler for customer withdrawals.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the withdrawal command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewNotAssignedError(cmd.OrderID().String(), cmd.CustomerID().String())
	}

	if err = aggregate.ChangeStatus(role.Customer, cmd.CustomerID(), order.Cancelled, h.clock.Now().UTC()); err != nil {
		return err
	}

	if err = restockLines(ctx, uow.OfferingRepository(), aggregate.Lines()); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
