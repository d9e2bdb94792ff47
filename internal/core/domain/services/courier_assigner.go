package services

import (
	"context"

	"restaurant/internal/core/domain/model/courier"
	"restaurant/internal/core/domain/model/kernel"
)

// CourierFinder looks up couriers by delivery zone.
type CourierFinder interface {
	GetFirstInZone(ctx context.Context, zoneID kernel.UUID) (*courier.Courier, error)
}

// CourierAssigner is a domain service that picks the courier for an
// order's delivery zone. The policy is deliberately simple: the courier
// with the lowest identifier serving the zone wins, and a zone with no
// couriers leaves the order unassigned instead of failing placement.
type CourierAssigner struct{}

// NewCourierAssigner creates a new CourierAssigner instance.
func NewCourierAssigner() CourierAssigner {
	return CourierAssigner{}
}

// Assign returns the courier for the zone, or nil (with a nil error)
// when the zone currently has no couriers.
func (a CourierAssigner) Assign(ctx context.Context, finder CourierFinder, zoneID kernel.UUID) (*courier.Courier, error) {
	if err := zoneID.Validate(); err != nil {
		return nil, err
	}
	return finder.GetFirstInZone(ctx, zoneID)
}
