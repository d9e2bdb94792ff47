package courier

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier registered to one home zone.
//
// Business rules:
//   - Courier must have a valid UUID, non-empty name, and valid home zone
//   - A courier only receives automatic assignments for orders of their zone
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// zoneID is the delivery zone the courier is registered to
	zoneID kernel.UUID
	// isConstructed ensures the courier was created via NewCourier
	isConstructed bool
}

// NewCourier creates a Courier instance with validation.
func NewCourier(id kernel.UUID, name string, zoneID kernel.UUID) (*Courier, error) {
	c := &Courier{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setZoneID(zoneID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier from persistence.
func RestoreCourier(id kernel.UUID, name string, zoneID kernel.UUID) (*Courier, error) {
	return NewCourier(id, name, zoneID)
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}
	return nil
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// ZoneID returns the courier's home delivery zone.
func (c *Courier) ZoneID() kernel.UUID {
	return c.zoneID
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}
	c.zoneID = zoneID
	return nil
}
