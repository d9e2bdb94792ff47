// Package order contains the order aggregate and its lifecycle state machine.
//
// An Order is created in Pending status against finite daily stock and moves
// through Confirmed, InKitchen, ReadyForPickup and OutForDelivery to
// Delivered, with Cancelled reachable from any non-terminal status. Each
// forward transition stamps its own timestamp exactly once. Which target
// statuses an actor may set is a declarative per-role allow-list enforced at
// the aggregate boundary.
package order
