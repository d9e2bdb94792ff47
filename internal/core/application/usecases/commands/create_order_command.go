package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// OrderItem is one cart position in an order placement request: which
// offering, how many, and which ingredients to leave out.
type OrderItem struct {
	OfferingID   kernel.UUID
	Quantity     int
	ExclusionIDs []kernel.UUID
}

// CreateOrderCommand represents a customer's request to place an order.
// Encapsulates the cart, the delivery zone and destination hints, and the
// chosen payment method.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, customerID, zoneID, destination,
//	    order.PaymentCash, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, tokenGen, assigner, bus, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	customerID  kernel.UUID
	zoneID      kernel.UUID
	destination order.Destination
	payment     order.PaymentMethod
	items       []OrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, the payment method and that the cart is not empty.
// Per-item quantity bounds are enforced later by the order lines.
func NewCreateOrderCommand(
	orderID, customerID, zoneID kernel.UUID,
	destination order.Destination,
	payment order.PaymentMethod,
	items []OrderItem,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setZoneID(zoneID),
		cmd.setPayment(payment),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.destination = destination
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the requesting customer's id.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ZoneID returns the delivery zone of the order.
func (c CreateOrderCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

// Destination returns the delivery hints.
func (c CreateOrderCommand) Destination() order.Destination {
	return c.destination
}

// Payment returns the chosen settlement method.
func (c CreateOrderCommand) Payment() order.PaymentMethod {
	return c.payment
}

// Items returns the cart positions.
func (c CreateOrderCommand) Items() []OrderItem {
	return append([]OrderItem(nil), c.items...)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = zoneID
	return nil
}

func (c *CreateOrderCommand) setPayment(payment order.PaymentMethod) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	c.payment = payment
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = append([]OrderItem(nil), items...)
	return nil
}
