package menurepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
)

// GormOfferingRepository implements OfferingRepository using GORM.
type GormOfferingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOfferingRepository creates a new GORM offering repository.
func NewGormOfferingRepository(db *gorm.DB, tracker aggregateTracker) *GormOfferingRepository {
	return &GormOfferingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new offering to the database.
func (r *GormOfferingRepository) Add(ctx context.Context, aggregate *menu.Offering) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing offering to the database. The available counter
// and the published flag both move through here, so zero values must reach
// the database.
func (r *GormOfferingRepository) Update(ctx context.Context, aggregate *menu.Offering) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OfferingDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"price":     dto.Price,
		"available": dto.Available,
		"published": dto.Published,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an offering by ID. The row is locked for the duration of
// the surrounding transaction: reservations and restocks read the available
// counter and write the decremented value back, so concurrent transactions
// must serialize on the row or the later write clobbers the earlier one.
func (r *GormOfferingRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Offering, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfferingDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offering", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
