// Package courier contains the courier entity.
// A courier is registered to one delivery zone and receives orders for that
// zone at order-creation time, or later through admin reassignment.
package courier
