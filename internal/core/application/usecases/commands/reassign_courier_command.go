package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrReassignCourierCommandIsNotConstructed = errors.New(
	"ReassignCourierCommand must be created via NewReassignCourierCommand constructor",
)

// ReassignCourierCommand represents an admin moving an order to a
// different courier, typically when the automatic zone assignment picked
// nobody or the assigned courier became unavailable.
type ReassignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReassignCourierCommand creates a command to (re)assign an order's courier.
func NewReassignCourierCommand(orderID, courierID kernel.UUID) (ReassignCourierCommand, error) {
	cmd := ReassignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
	); err != nil {
		return ReassignCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignCourierCommand) Validate() error {
	return c.guard.Validate(ErrReassignCourierCommandIsNotConstructed)
}

// OrderID returns the order to reassign.
func (c ReassignCourierCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the courier taking over the delivery.
func (c ReassignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *ReassignCourierCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReassignCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
