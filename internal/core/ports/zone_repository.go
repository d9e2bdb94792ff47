package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
)

// ZoneRepository defines the read contract for delivery zones.
// Zones are reference data managed outside the ordering flow; the flow
// only needs to know whether a requested zone exists.
type ZoneRepository interface {
	// Exists reports whether a delivery zone with the given id exists.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
