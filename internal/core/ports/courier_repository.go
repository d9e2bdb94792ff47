// Package ports defines repository interfaces for the ordering domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/courier"
	"restaurant/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetFirstInZone retrieves the courier serving the given zone with the
	// lowest identifier, or nil (with a nil error) when the zone has no
	// couriers. Zones without couriers leave orders unassigned rather than
	// failing order placement.
	GetFirstInZone(ctx context.Context, zoneID kernel.UUID) (*courier.Courier, error)
}
