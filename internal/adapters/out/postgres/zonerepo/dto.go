// Package zonerepo provides persistence for delivery zone reference data.
package zonerepo

import (
	"github.com/google/uuid"
)

// ZoneDTO represents the database structure for delivery zones.
// Zones are reference data seeded outside the ordering flow.
type ZoneDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"not null"`
}

// TableName specifies the database table name for zones.
func (ZoneDTO) TableName() string {
	return "zones"
}
