package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery looks an order up by its pickup token. Customers use the
// token to follow their order without knowing its internal identifier.
type TrackOrderQuery struct {
	token order.Token

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query to track an order by token.
func NewTrackOrderQuery(token order.Token) (TrackOrderQuery, error) {
	if err := token.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{
		token: token,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// Token returns the pickup token to look up.
func (q TrackOrderQuery) Token() order.Token {
	return q.token
}

// TrackOrderQueryResponse is the public tracking view of an order:
// where it stands in the lifecycle, when it moved, and who is bringing it.
type TrackOrderQueryResponse struct {
	Token          string
	Status         string
	CourierName    string
	CreatedAt      time.Time
	ConfirmedAt    *time.Time
	KitchenReadyAt *time.Time
	DispatchedAt   *time.Time
	DeliveredAt    *time.Time
}
