// Package menurepo provides data transfer objects and mapping functions for
// daily menu offering persistence.
package menurepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// OfferingDTO represents the database structure for persisting offerings.
type OfferingDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Day       time.Time       `gorm:"index"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2)"`
	Available int
	Published bool
}

// TableName specifies the database table name for offerings.
func (OfferingDTO) TableName() string {
	return "offerings"
}

func fromDomain(offering *menu.Offering) OfferingDTO {
	return OfferingDTO{
		ID:        offering.ID().Bytes(),
		Day:       offering.Day(),
		Price:     offering.Price().Amount(),
		Available: offering.Available(),
		Published: offering.IsPublished(),
	}
}

func toDomain(dto OfferingDTO) (*menu.Offering, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.RestoreOffering(id, dto.Day, price, dto.Available, dto.Published)
}
