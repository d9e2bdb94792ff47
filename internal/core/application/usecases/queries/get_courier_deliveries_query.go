package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetCourierDeliveriesQueryIsNotConstructed = errors.New(
	"GetCourierDeliveriesQuery must be created via NewGetCourierDeliveriesQuery constructor",
)

// GetCourierDeliveriesQuery retrieves a courier's active workload: orders
// assigned to them that are ready for pickup or already on the road.
type GetCourierDeliveriesQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierDeliveriesQuery creates a query for a courier's active deliveries.
func NewGetCourierDeliveriesQuery(courierID kernel.UUID) (GetCourierDeliveriesQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierDeliveriesQuery{}, err
	}

	return GetCourierDeliveriesQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierDeliveriesQueryIsNotConstructed)
}

// CourierID returns the courier whose workload is requested.
func (q GetCourierDeliveriesQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetCourierDeliveriesQueryResponse is one active delivery with everything
// the courier needs at the door: destination hints, payment method and
// whether money still changes hands.
type GetCourierDeliveriesQueryResponse struct {
	ID          kernel.UUID
	Token       string
	Status      string
	MapsLink    string
	AddressNote string
	Payment     string
	Paid        bool
	Total       decimal.Decimal
	CreatedAt   time.Time
}
