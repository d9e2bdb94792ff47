// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
package courierrepo

import (
	"github.com/google/uuid"

	"restaurant/internal/core/domain/model/courier"
	"restaurant/internal/core/domain/model/kernel"
)

// CourierDTO represents the database structure for persisting couriers.
type CourierDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"not null"`
	ZoneID uuid.UUID `gorm:"type:uuid;index;not null"`
}

// TableName specifies the database table name for couriers.
func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		ZoneID: aggregate.ZoneID().Bytes(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	zoneID, err := kernel.UUIDFromBytes(dto.ZoneID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, zoneID)
}
