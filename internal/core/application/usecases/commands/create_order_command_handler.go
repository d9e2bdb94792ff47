package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order placement.
//
// Placement runs in a single transaction: the delivery zone is checked,
// every offering is validated and its stock reserved, a unique pickup
// token is generated, a courier for the zone is assigned when one exists,
// and the order is persisted. Stock reservations roll back with the
// transaction, so a failed placement never leaks reserved portions.
// Notifications go out only after the commit.
type CreateOrderCommandHandler struct {
	uowFactory     UoWFactory
	tokenGenerator services.TokenGenerator
	assigner       services.CourierAssigner
	notifier       Notifier
	clock          ports.Clock
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	tokenGenerator services.TokenGenerator,
	assigner services.CourierAssigner,
	notifier Notifier,
	clock ports.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:     uowFactory,
		tokenGenerator: tokenGenerator,
		assigner:       assigner,
		notifier:       notifier,
		clock:          clock,
	}
}

// Handle processes the order placement command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	exists, err := uow.ZoneRepository().Exists(ctx, cmd.ZoneID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("zoneId", cmd.ZoneID().String())
	}

	offeringRepo := uow.OfferingRepository()

	// Resolve every offering before reserving anything, so a cart with an
	// unknown position fails without touching stock counters. Each offering
	// is loaded exactly once: a cart naming the same offering on several
	// lines must reserve against one shared instance, or the lines would
	// each decrement their own copy and oversell.
	offerings := make(map[kernel.UUID]*menu.Offering, len(cmd.Items()))
	for _, item := range cmd.Items() {
		if _, ok := offerings[item.OfferingID]; ok {
			continue
		}
		offering, getErr := offeringRepo.Get(ctx, item.OfferingID)
		if getErr != nil {
			return getErr
		}
		offerings[item.OfferingID] = offering
	}

	lines := make([]*order.Line, len(cmd.Items()))
	for i, item := range cmd.Items() {
		offering := offerings[item.OfferingID]
		if reserveErr := offering.Reserve(item.Quantity); reserveErr != nil {
			return reserveErr
		}

		// The line freezes the offering's current price, so later menu
		// edits never change a placed order's total.
		line, lineErr := order.NewLine(kernel.NewUUID(), offering.ID(), item.Quantity, offering.Price(), item.ExclusionIDs)
		if lineErr != nil {
			return lineErr
		}
		lines[i] = line
	}

	// Flush each offering's final counter once, after all its lines have
	// reserved against it.
	for _, offering := range offerings {
		if updateErr := offeringRepo.Update(ctx, offering); updateErr != nil {
			return updateErr
		}
	}

	orderRepo := uow.OrderRepository()
	token, err := h.tokenGenerator.Generate(ctx, orderRepo)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), token, cmd.CustomerID(), cmd.ZoneID(),
		cmd.Destination(), cmd.Payment(), lines, h.clock.Now().UTC(),
	)
	if err != nil {
		return err
	}

	assigned, err := h.assigner.Assign(ctx, uow.CourierRepository(), cmd.ZoneID())
	if err != nil {
		return err
	}
	if assigned != nil {
		if assignErr := newOrder.AssignCourier(assigned.ID()); assignErr != nil {
			return assignErr
		}
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.PublishNewOrder(newOrder.ID(), token, cmd.CustomerID(), len(lines), newOrder.Total())
	if assigned != nil {
		h.notifier.PublishCourierAssigned(assigned.ID(), newOrder.ID(), token, cmd.Destination().MapsLink())
	}
	return nil
}
