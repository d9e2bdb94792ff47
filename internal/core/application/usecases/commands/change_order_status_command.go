package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/role"
	"restaurant/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents an actor's request to move an order
// to a new lifecycle status. The acting role and identity decide which
// transitions the state machine allows.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	actorID          kernel.UUID
	actorRole        role.Role
	target           order.Status
	paymentConfirmed bool

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// paymentConfirmed marks the order as paid alongside the transition; couriers
// set it when collecting cash or verifying a QR transfer at hand-off.
func NewChangeOrderStatusCommand(
	orderID, actorID kernel.UUID,
	actorRole role.Role,
	target order.Status,
	paymentConfirmed bool,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setActorRole(actorRole),
		cmd.setTarget(target),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	cmd.paymentConfirmed = paymentConfirmed
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identity requesting the transition.
func (c ChangeOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role requesting the transition.
func (c ChangeOrderStatusCommand) ActorRole() role.Role {
	return c.actorRole
}

// Target returns the requested status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

// PaymentConfirmed reports whether the transition also marks the order paid.
func (c ChangeOrderStatusCommand) PaymentConfirmed() bool {
	return c.paymentConfirmed
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *ChangeOrderStatusCommand) setActorRole(actorRole role.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
