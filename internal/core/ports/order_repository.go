package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and removing order entities,
// plus the token lookups the pickup workflow relies on.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	// A token collision with an existing order surfaces as a conflict error.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its lines, status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByToken retrieves an order aggregate by its pickup token.
	GetByToken(ctx context.Context, token order.Token) (*order.Order, error)

	// Delete removes an order aggregate and its lines from storage.
	// Used when a customer withdraws a pending order.
	Delete(ctx context.Context, id kernel.UUID) error

	// TokenExists reports whether any persisted order carries the token.
	// Used by token generation to retry on collisions.
	TokenExists(ctx context.Context, token order.Token) (bool, error)
}
