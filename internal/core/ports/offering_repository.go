package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// OfferingRepository defines the persistence contract for daily menu
// offerings, the aggregates that carry price, publication state and the
// remaining stock counter.
type OfferingRepository interface {
	// Add persists a new offering aggregate to storage.
	Add(ctx context.Context, aggregate *menu.Offering) error

	// Update persists changes to an existing offering aggregate,
	// including stock reservations and releases.
	Update(ctx context.Context, aggregate *menu.Offering) error

	// Get retrieves an offering aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.Offering, error)
}
