package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetKitchenQueueQueryIsNotConstructed = errors.New(
	"GetKitchenQueueQuery must be created via NewGetKitchenQueueQuery constructor",
)

// GetKitchenQueueQuery retrieves the orders the kitchen should be working
// on: confirmed and in-kitchen orders, oldest first, with their lines and
// ingredient exclusions.
type GetKitchenQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKitchenQueueQuery creates a query for the kitchen work queue.
// This is a parameterless query.
func NewGetKitchenQueueQuery() GetKitchenQueueQuery {
	return GetKitchenQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetKitchenQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenQueueQueryIsNotConstructed)
}

// KitchenQueueLine is one cart position as the kitchen sees it.
type KitchenQueueLine struct {
	OfferingID   kernel.UUID
	Quantity     int
	ExclusionIDs []kernel.UUID
}

// GetKitchenQueueQueryResponse is one order on the kitchen queue.
type GetKitchenQueueQueryResponse struct {
	ID        kernel.UUID
	Token     string
	Status    string
	CreatedAt time.Time
	Lines     []KitchenQueueLine
}
