package zonerepo

import (
	"context"

	"gorm.io/gorm"

	"restaurant/internal/core/domain/model/kernel"
)

// GormZoneRepository implements ZoneRepository using GORM.
type GormZoneRepository struct {
	db *gorm.DB
}

// NewGormZoneRepository creates a new GORM zone repository.
func NewGormZoneRepository(db *gorm.DB) *GormZoneRepository {
	return &GormZoneRepository{db: db}
}

// Exists reports whether a delivery zone with the given id exists.
func (r *GormZoneRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&ZoneDTO{}).
		Where("id = ?", id.Bytes()).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
