// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OfferingRepoFactory provides access to the offering repository within a transaction.
	OfferingRepoFactory interface {
		OfferingRepository() ports.OfferingRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// ZoneRepoFactory provides access to the zone repository within a transaction.
	ZoneRepoFactory interface {
		ZoneRepository() ports.ZoneRepository
	}

	// OrderUoW manages transactions for order-and-stock operations.
	// Status changes and cancellations touch orders and, on restock,
	// offerings, so both repositories ride the same transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		OfferingRepoFactory
		CourierRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions across every aggregate order placement
	// touches: zones, offerings, orders and couriers.
	UoW interface {
		TxManager
		OrderRepoFactory
		OfferingRepoFactory
		CourierRepoFactory
		ZoneRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// Notifier publishes lifecycle events to the in-process notification bus.
// Handlers publish only after their transaction commits, so consumers never
// see events for rolled-back work.
type Notifier interface {
	PublishNewOrder(orderID kernel.UUID, token order.Token, customerID kernel.UUID, itemsCount int, total kernel.Money)
	PublishStateChanged(customerID, orderID kernel.UUID, token order.Token, status order.Status)
	PublishCourierAssigned(courierID, orderID kernel.UUID, token order.Token, address string)
	PublishOrderReady(orderID kernel.UUID, token order.Token)
	PublishCourierEnRoute(customerID, orderID kernel.UUID, token order.Token, courierName string)
	PublishCourierArrived(customerID, orderID kernel.UUID, token order.Token, courierName string)
}
