package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrNotifyArrivalCommandIsNotConstructed = errors.New(
	"NotifyArrivalCommand must be created via NewNotifyArrivalCommand constructor",
)

// NotifyArrivalCommand represents a courier telling the customer they are
// at the door. It changes no order state; it only fans out a personal
// notification.
type NotifyArrivalCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewNotifyArrivalCommand creates a command for a courier arrival ping.
func NewNotifyArrivalCommand(orderID, courierID kernel.UUID) (NotifyArrivalCommand, error) {
	cmd := NotifyArrivalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
	); err != nil {
		return NotifyArrivalCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c NotifyArrivalCommand) Validate() error {
	return c.guard.Validate(ErrNotifyArrivalCommandIsNotConstructed)
}

// OrderID returns the order being delivered.
func (c NotifyArrivalCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the courier announcing arrival.
func (c NotifyArrivalCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *NotifyArrivalCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *NotifyArrivalCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
