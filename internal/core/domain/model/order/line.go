package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// MaxLineQuantity is the per-line cap on ordered units of one offering.
const MaxLineQuantity = 10

// ErrLineIsNotConstructed is returned when using an improperly initialized Line.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one cart position of an order: a quantity of one menu offering,
// plus the ingredient exclusions the customer requested for it.
//
// The unit price is captured at order-creation time, so later price changes
// of the underlying offering do not drift into existing orders. Lines are
// exclusively owned by their order and deleted with it.
type Line struct {
	// id uniquely identifies the line
	id kernel.UUID

	// offeringID references the daily menu offering being ordered
	offeringID kernel.UUID

	// quantity is the ordered unit count, 1..MaxLineQuantity
	quantity int

	// unitPrice is the offering price frozen at creation time
	unitPrice kernel.Money

	// exclusionIDs lists ingredient ids the kitchen should omit.
	// Purely descriptive; carries no stock implication.
	exclusionIDs []kernel.UUID

	// isConstructed ensures the line was created via NewLine
	isConstructed bool
}

// NewLine creates an order line with validation.
// Quantity must be positive and within MaxLineQuantity; exclusion ids must
// be valid UUIDs.
func NewLine(id, offeringID kernel.UUID, quantity int, unitPrice kernel.Money, exclusionIDs []kernel.UUID) (*Line, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := offeringID.Validate(); err != nil {
		return nil, err
	}
	if quantity <= 0 || quantity > MaxLineQuantity {
		return nil, errs.NewValidationFailedErrorWithCause("quantity",
			fmt.Errorf("%d is outside 1..%d", quantity, MaxLineQuantity))
	}
	for _, exclusionID := range exclusionIDs {
		if err := exclusionID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Line{
		id:            id,
		offeringID:    offeringID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		exclusionIDs:  append([]kernel.UUID(nil), exclusionIDs...),
		isConstructed: true,
	}, nil
}

// RestoreLine reconstructs a Line from persistence.
func RestoreLine(id, offeringID kernel.UUID, quantity int, unitPrice kernel.Money, exclusionIDs []kernel.UUID) (*Line, error) {
	return NewLine(id, offeringID, quantity, unitPrice, exclusionIDs)
}

// Validate ensures the Line instance was properly constructed.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// OfferingID returns the referenced menu offering.
func (l *Line) OfferingID() kernel.UUID {
	return l.offeringID
}

// Quantity returns the ordered unit count.
func (l *Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price per unit captured at creation time.
func (l *Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// ExclusionIDs returns the ingredient ids to omit. The returned slice is a
// copy; mutating it does not affect the line.
func (l *Line) ExclusionIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), l.exclusionIDs...)
}

// Total returns unit price times quantity.
func (l *Line) Total() kernel.Money {
	return l.unitPrice.MulInt(l.quantity)
}
