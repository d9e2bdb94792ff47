package order

import (
	"fmt"

	"restaurant/internal/core/domain/model/role"
	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> InKitchen ──> ReadyForPickup ──> OutForDelivery ──> Delivered
//	    │            │             │               │                  │
//	    └────────────┴─────────────┴───────┬───────┴──────────────────┘
//	                                       v
//	                                   Cancelled
//
// Delivered and Cancelled are terminal. Pending is set only at creation and
// is never a legal transition target.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// Confirmed indicates the restaurant accepted the order.
	Confirmed

	// InKitchen indicates the kitchen started preparing the order.
	InKitchen

	// ReadyForPickup indicates the kitchen finished and a courier may collect.
	ReadyForPickup

	// OutForDelivery indicates the assigned courier collected the order.
	OutForDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled and its stock restored. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		Confirmed:      "Confirmed",
		InKitchen:      "InKitchen",
		ReadyForPickup: "ReadyForPickup",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		Confirmed:      "Confirmed",
		InKitchen:      "InKitchen",
		ReadyForPickup: "ReadyForPickup",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// StatusFromString parses a status name as exchanged with thin routing layers.
func StatusFromString(s string) (Status, error) {
	for st, name := range getValidStatusStrings() {
		if name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions leave this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// allowedTargets is the declarative per-role allow-list of transition
// targets. It is the single place encoding which role may request which
// target status; source-state legality is checked separately by the
// aggregate.
func allowedTargets(r role.Role) map[Status]bool {
	switch r {
	case role.Admin:
		return map[Status]bool{
			Confirmed:      true,
			InKitchen:      true,
			ReadyForPickup: true,
			OutForDelivery: true,
			Delivered:      true,
			Cancelled:      true,
		}
	case role.Kitchen:
		return map[Status]bool{
			InKitchen:      true,
			ReadyForPickup: true,
		}
	case role.Courier:
		return map[Status]bool{
			OutForDelivery: true,
			Delivered:      true,
		}
	case role.Customer:
		return map[Status]bool{
			Cancelled: true,
		}
	default:
		return nil
	}
}

// CanBeSetBy reports whether the given role may request a transition to
// this status at all, regardless of the order's current status.
func (s Status) CanBeSetBy(r role.Role) bool {
	return allowedTargets(r)[s]
}

// courierSource returns the only source status a courier may transition
// from to reach the given target.
func courierSource(target Status) Status {
	switch target {
	case OutForDelivery:
		return ReadyForPickup
	case Delivered:
		return OutForDelivery
	default:
		return Unknown
	}
}
