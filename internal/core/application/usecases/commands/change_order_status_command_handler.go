package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// ChangeOrderStatusCommandHandler drives order lifecycle transitions.
//
// The aggregate enforces role gating and source-state legality; the
// handler adds the transactional side effects: restocking reserved
// portions when an order lands on Cancelled, and publishing the matching
// notifications after the commit. A transition that leaves the status
// unchanged is a no-op with no side effects.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
	clock      ports.Clock
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, notifier Notifier, clock ports.Clock) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle processes the status change command.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	previous := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.ActorRole(), cmd.ActorID(), cmd.Target(), h.clock.Now().UTC()); err != nil {
		return err
	}
	if aggregate.Status() == previous {
		return nil
	}

	if cmd.PaymentConfirmed() {
		aggregate.ConfirmPayment()
	}

	// Cancellation returns every reserved portion to its offering. The
	// already-cancelled rejection above makes this run at most once.
	if aggregate.Status() == order.Cancelled {
		if err = restockLines(ctx, uow.OfferingRepository(), aggregate.Lines()); err != nil {
			return err
		}
	}

	// Resolve the courier's display name inside the transaction; the
	// en-route notification needs it after commit.
	courierName := ""
	if aggregate.Status() == order.OutForDelivery && aggregate.Courier() != nil {
		assigned, courierErr := uow.CourierRepository().Get(ctx, *aggregate.Courier())
		if courierErr != nil {
			return courierErr
		}
		courierName = assigned.Name()
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publishTransition(aggregate, courierName)
	return nil
}

func (h *ChangeOrderStatusCommandHandler) publishTransition(aggregate *order.Order, courierName string) {
	h.notifier.PublishStateChanged(aggregate.CustomerID(), aggregate.ID(), aggregate.Token(), aggregate.Status())

	switch aggregate.Status() { //nolint:exhaustive // only some transitions fan out further
	case order.ReadyForPickup:
		if aggregate.Courier() != nil {
			h.notifier.PublishOrderReady(aggregate.ID(), aggregate.Token())
		}
	case order.OutForDelivery:
		h.notifier.PublishCourierEnRoute(aggregate.CustomerID(), aggregate.ID(), aggregate.Token(), courierName)
	}
}

// restockLines releases every line's quantity back to its offering. Lines
// sharing an offering release into one loaded instance, mirroring how
// placement reserves, so the written counter reflects every line.
func restockLines(ctx context.Context, offeringRepo ports.OfferingRepository, lines []*order.Line) error {
	offerings := make(map[kernel.UUID]*menu.Offering, len(lines))
	for _, line := range lines {
		offering, ok := offerings[line.OfferingID()]
		if !ok {
			loaded, err := offeringRepo.Get(ctx, line.OfferingID())
			if err != nil {
				return err
			}
			offering = loaded
			offerings[line.OfferingID()] = offering
		}
		if err := offering.Release(line.Quantity()); err != nil {
			return err
		}
	}
	for _, offering := range offerings {
		if err := offeringRepo.Update(ctx, offering); err != nil {
			return err
		}
	}
	return nil
}
