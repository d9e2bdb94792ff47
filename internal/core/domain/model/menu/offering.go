package menu

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOfferingIsNotConstructed is returned when an Offering instance was not
	// created through the NewOffering or RestoreOffering factory methods.
	ErrOfferingIsNotConstructed = errors.New("Offering must be created via NewOffering constructor")

	// ErrQuantityIsInvalid is returned for zero or negative reserve/release quantities.
	ErrQuantityIsInvalid = errs.NewValueIsInvalidError("quantity must be greater than 0")
)

// Offering represents one day's menu bundle with finite stock.
// It is the aggregate root of the stock ledger: all mutations of the
// available quantity go through Reserve and Release.
//
// Offering maintains these invariants:
//   - Available quantity is never negative
//   - Reservations are rejected for unpublished offerings
//   - Reserve and Release on the same instance are mutually exclusive,
//     so two concurrent reservations cannot both pass the availability check
type Offering struct {
	mu sync.Mutex

	// id uniquely identifies the offering
	id kernel.UUID

	// day is the calendar date this offering is sold on
	day time.Time

	// price is the current unit price of the bundle
	price kernel.Money

	// available is the remaining purchasable quantity
	available int

	// published controls whether customers may order the offering
	published bool

	// isConstructed ensures the offering was created via a constructor
	isConstructed bool
}

// NewOffering creates an Offering with validation.
// The initial available quantity must not be negative.
func NewOffering(id kernel.UUID, day time.Time, price kernel.Money, available int, published bool) (*Offering, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if available < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("available is invalid",
			fmt.Errorf("%d is negative", available))
	}

	return &Offering{
		id:            id,
		day:           day,
		price:         price,
		available:     available,
		published:     published,
		isConstructed: true,
	}, nil
}

// RestoreOffering reconstructs an Offering from persistence.
// Applies the same validation as NewOffering.
func RestoreOffering(id kernel.UUID, day time.Time, price kernel.Money, available int, published bool) (*Offering, error) {
	return NewOffering(id, day, price, available, published)
}

// Validate ensures the Offering was properly constructed.
func (o *Offering) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfferingIsNotConstructed
	}
	return nil
}

// ID returns the offering's unique identifier.
func (o *Offering) ID() kernel.UUID {
	return o.id
}

// Day returns the calendar date the offering is sold on.
func (o *Offering) Day() time.Time {
	return o.day
}

// Price returns the current unit price.
func (o *Offering) Price() kernel.Money {
	return o.price
}

// Available returns the remaining purchasable quantity.
func (o *Offering) Available() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.available
}

// IsPublished reports whether customers may order the offering.
func (o *Offering) IsPublished() bool {
	return o.published
}

// Reserve atomically decrements the available quantity.
//
// Fails with ErrOfferingNotPublished when the offering is not published and
// with ErrInsufficientStock when quantity exceeds the available amount.
// On failure the available quantity is unchanged.
func (o *Offering) Reserve(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	if !o.published {
		return errs.NewOfferingNotPublishedError(o.id.String())
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if quantity > o.available {
		return errs.NewInsufficientStockError(o.id.String(), quantity, o.available)
	}

	o.available -= quantity
	return nil
}

// Release atomically increments the available quantity.
//
// Used on cancellation to return previously reserved stock. There is no
// upper bound check: the only source of decrements is prior reservations,
// so the quantity cannot logically exceed the original capacity.
func (o *Offering) Release(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.available += quantity
	return nil
}
