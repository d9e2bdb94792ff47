package order

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/role"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrLinesAreRequired is returned when creating an order with an empty cart.
	ErrLinesAreRequired = errs.NewValidationFailedError("order must have at least one line")
)

// Order represents a customer's daily-menu order. It is the aggregate root
// that owns the order lines, the pickup token and the lifecycle state
// machine from placement to delivery or cancellation.
//
// Order maintains these invariants:
//   - At least one line; the total equals the sum of line totals
//   - Status transitions follow the per-role allow-list and the source-state
//     rules of the state machine; terminal statuses admit no further moves
//   - Exactly the timestamps of statuses already passed through are set,
//     each stamped once and never overwritten
//   - A courier transition is only legal for the courier the order is
//     assigned to
type Order struct {
	// id is the surrogate identifier of the order
	id kernel.UUID

	// token is the human-presentable pickup identifier, unique per order
	token Token

	// customerID is the requesting customer
	customerID kernel.UUID

	// zoneID is the delivery zone of the order
	zoneID kernel.UUID

	// courierID is the assigned courier (nil if unassigned)
	courierID *kernel.UUID

	// destination carries the customer's delivery hints
	destination Destination

	// payment is the chosen settlement method
	payment PaymentMethod

	// paid reports whether payment was confirmed at hand-off
	paid bool

	// total is the order amount, frozen at creation time
	total kernel.Money

	// status is the current lifecycle state
	status Status

	// lines are the cart positions, exclusively owned by the order
	lines []*Line

	// per-transition timestamps
	createdAt      time.Time
	confirmedAt    *time.Time
	kitchenReadyAt *time.Time
	dispatchedAt   *time.Time
	deliveredAt    *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an Order in Pending status with validation.
// The total is computed from the given lines, so it cannot diverge from
// them. The creation timestamp is supplied by the caller's clock.
func NewOrder(
	id kernel.UUID,
	token Token,
	customerID kernel.UUID,
	zoneID kernel.UUID,
	destination Destination,
	payment PaymentMethod,
	lines []*Line,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		token.Validate(),
		customerID.Validate(),
		zoneID.Validate(),
		payment.Validate(),
	); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrLinesAreRequired
	}

	total := kernel.ZeroMoney()
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
		total = total.Add(line.Total())
	}

	return &Order{
		id:            id,
		token:         token,
		customerID:    customerID,
		zoneID:        zoneID,
		destination:   destination,
		payment:       payment,
		total:         total,
		status:        Pending,
		lines:         append([]*Line(nil), lines...),
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status,
// courier assignment, payment flag and transition timestamps.
func RestoreOrder(
	id kernel.UUID,
	token Token,
	customerID kernel.UUID,
	zoneID kernel.UUID,
	destination Destination,
	payment PaymentMethod,
	paid bool,
	status Status,
	courierID *kernel.UUID,
	lines []*Line,
	createdAt time.Time,
	confirmedAt, kitchenReadyAt, dispatchedAt, deliveredAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, token, customerID, zoneID, destination, payment, lines, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err = courierID.Validate(); err != nil {
			return nil, err
		}
		cID := *courierID
		o.courierID = &cID
	}

	o.status = status
	o.paid = paid
	o.confirmedAt = copyTime(confirmedAt)
	o.kitchenReadyAt = copyTime(kitchenReadyAt)
	o.dispatchedAt = copyTime(dispatchedAt)
	o.deliveredAt = copyTime(deliveredAt)
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's surrogate identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Token returns the human-presentable pickup token.
func (o *Order) Token() Token {
	return o.token
}

// CustomerID returns the requesting customer's id.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// ZoneID returns the delivery zone of the order.
func (o *Order) ZoneID() kernel.UUID {
	return o.zoneID
}

// Courier returns the assigned courier's id, or nil if unassigned.
func (o *Order) Courier() *kernel.UUID {
	if o.courierID == nil {
		return nil
	}
	cID := *o.courierID
	return &cID
}

// Destination returns the delivery hints.
func (o *Order) Destination() Destination {
	return o.destination
}

// PaymentMethod returns the chosen settlement method.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.payment
}

// IsPaid reports whether payment was confirmed.
func (o *Order) IsPaid() bool {
	return o.paid
}

// Total returns the order amount frozen at creation.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Lines returns the order's cart positions. The returned slice is a copy;
// the lines themselves are shared.
func (o *Order) Lines() []*Line {
	return append([]*Line(nil), o.lines...)
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// ConfirmedAt returns the confirmation timestamp, or nil.
func (o *Order) ConfirmedAt() *time.Time { return copyTime(o.confirmedAt) }

// KitchenReadyAt returns the kitchen-ready timestamp, or nil.
func (o *Order) KitchenReadyAt() *time.Time { return copyTime(o.kitchenReadyAt) }

// DispatchedAt returns the out-for-delivery timestamp, or nil.
func (o *Order) DispatchedAt() *time.Time { return copyTime(o.dispatchedAt) }

// DeliveredAt returns the delivery timestamp, or nil.
func (o *Order) DeliveredAt() *time.Time { return copyTime(o.deliveredAt) }

// AssignCourier assigns or reassigns the order to a courier.
// Assignment is rejected once the order reached a terminal status.
func (o *Order) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewInvalidTransitionError(o.id.String(), o.status.String(), o.status.String())
	}

	o.courierID = &courierID
	return nil
}

// ConfirmPayment marks the order as paid. Idempotent.
func (o *Order) ConfirmPayment() {
	o.paid = true
}

// ChangeStatus drives the state machine on behalf of an actor.
//
// The rules, in evaluation order:
//   - Setting the current status again is a no-op, except that cancelling an
//     already-cancelled order fails with AlreadyCancelled
//   - The target must be on the actor role's allow-list, else InvalidTransition
//   - No transition leaves a terminal status (this also rejects cancelling a
//     delivered order)
//   - A customer may only cancel while Pending
//   - A courier must own the order (else NotAssigned) and follow
//     ReadyForPickup -> OutForDelivery -> Delivered (else InvalidTransition)
//
// On success the timestamp matching the new status is stamped with the
// supplied instant, but only if not already set, so replayed transitions
// never overwrite earlier stamps.
func (o *Order) ChangeStatus(actorRole role.Role, actorID kernel.UUID, target Status, at time.Time) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if target == o.status {
		if o.status == Cancelled {
			return errs.NewAlreadyCancelledError(o.id.String())
		}
		return nil
	}

	if target == Pending || !target.CanBeSetBy(actorRole) {
		return errs.NewInvalidTransitionError(o.id.String(), o.status.String(), target.String())
	}

	if o.status.IsTerminal() {
		return errs.NewInvalidTransitionError(o.id.String(), o.status.String(), target.String())
	}

	switch actorRole {
	case role.Customer:
		if o.status != Pending {
			return errs.NewInvalidTransitionError(o.id.String(), o.status.String(), target.String())
		}
	case role.Courier:
		if err := actorID.Validate(); err != nil {
			return err
		}
		if o.courierID == nil || !o.courierID.IsEqual(actorID) {
			return errs.NewNotAssignedError(o.id.String(), actorID.String())
		}
		if o.status != courierSource(target) {
			return errs.NewInvalidTransitionError(o.id.String(), o.status.String(), target.String())
		}
	case role.Kitchen, role.Admin:
		// No source restriction beyond the terminal guard above.
	}

	o.stamp(target, at)
	o.status = target
	return nil
}

// stamp records the timestamp matching the target status, once.
func (o *Order) stamp(target Status, at time.Time) {
	switch target {
	case Confirmed:
		if o.confirmedAt == nil {
			o.confirmedAt = &at
		}
	case ReadyForPickup:
		if o.kitchenReadyAt == nil {
			o.kitchenReadyAt = &at
		}
	case OutForDelivery:
		if o.dispatchedAt == nil {
			o.dispatchedAt = &at
		}
	case Delivered:
		if o.deliveredAt == nil {
			o.deliveredAt = &at
		}
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
