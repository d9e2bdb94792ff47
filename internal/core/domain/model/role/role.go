// Package role defines the actor roles of the restaurant system.
// A role governs both authorization (which order status transitions an actor
// may trigger) and notification routing (which broadcast events an actor
// sees when polling).
package role

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Role identifies the kind of actor interacting with the order lifecycle.
type Role int

const (
	// Unknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	Unknown Role = iota

	// Admin oversees the whole flow and may drive any transition.
	Admin

	// Kitchen prepares orders and moves them through the kitchen states.
	Kitchen

	// Courier delivers orders assigned to them.
	Courier

	// Customer places orders and may cancel while still pending.
	Customer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Unknown:  "Unknown",
		Admin:    "Admin",
		Kitchen:  "Kitchen",
		Courier:  "Courier",
		Customer: "Customer",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Role]string{
		Admin:    "Admin",
		Kitchen:  "Kitchen",
		Courier:  "Courier",
		Customer: "Customer",
	}
}

// RoleFromString parses a role name ("Admin", "Kitchen", "Courier",
// "Customer"), as carried by the identity collaborator.
func RoleFromString(s string) (Role, error) {
	for r, name := range getValidRoleStrings() {
		if name == s {
			return r, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is valid.
// Valid roles are Admin, Kitchen, Courier and Customer.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements fmt.Stringer; safe to call on any value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
