package atmrepo

import (
	"context"
	"errors"

	"cashrun/internal/core/domain/model/atm"
	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormAtmRepository implements ports.AtmRepository using GORM.
type GormAtmRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormAtmRepository(db *gorm.DB, tracker aggregateTracker) *GormAtmRepository {
	return &GormAtmRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormAtmRepository) Add(ctx context.Context, aggregate *atm.Atm) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := atmFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormAtmRepository) Update(ctx context.Context, aggregate *atm.Atm) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := atmFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AtmDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "address", "latitude", "longitude", "status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("atm", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormAtmRepository) Get(ctx context.Context, id kernel.UUID) (*atm.Atm, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AtmDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("atm", id.String())
		}
		return nil, err
	}

	return atmToDomain(dto)
}

// ListActive returns up to limit active ATMs ordered by id.
func (r *GormAtmRepository) ListActive(ctx context.Context, limit int) ([]*atm.Atm, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []AtmDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", string(atm.StatusActive)).
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	atms := make([]*atm.Atm, 0, len(dtos))
	for _, dto := range dtos {
		a, err := atmToDomain(dto)
		if err != nil {
			return nil, err
		}
		atms = append(atms, a)
	}

	return atms, nil
}
