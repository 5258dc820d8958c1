package atmrepo

import (
	"context"

	"cashrun/internal/core/domain/model/atm"
	"cashrun/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPreferenceRepository implements ports.PreferenceRepository using GORM.
type GormPreferenceRepository struct {
	db *gorm.DB
}

func NewGormPreferenceRepository(db *gorm.DB) *GormPreferenceRepository {
	return &GormPreferenceRepository{db: db}
}

// ListForAddress loads the preferences of an address with their ATM rows,
// most used first, then most recently used.
func (r *GormPreferenceRepository) ListForAddress(
	ctx context.Context,
	addressID kernel.UUID,
) ([]*atm.Preference, error) {
	if err := addressID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PreferenceDTO
	err := r.db.WithContext(ctx).
		Preload("Atm").
		Where("customer_address_id = ?", addressID.Bytes()).
		Order("times_used DESC, last_used_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	prefs := make([]*atm.Preference, 0, len(dtos))
	for _, dto := range dtos {
		p, err := preferenceToDomain(dto)
		if err != nil {
			return nil, err
		}
		prefs = append(prefs, p)
	}

	return prefs, nil
}

// Upsert writes the counter and timestamp carried by p. The stored counter
// never decreases: a smaller times_used, such as a fresh preference written
// for a pair that already exists, keeps the stored value. Concurrent writers
// carrying the same count still collapse into one increment.
func (r *GormPreferenceRepository) Upsert(ctx context.Context, p *atm.Preference) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := preferenceFromDomain(p)
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_address_id"}, {Name: "atm_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"times_used":   gorm.Expr("GREATEST(address_atm_preferences.times_used, excluded.times_used)"),
				"last_used_at": gorm.Expr("excluded.last_used_at"),
			}),
		}).
		Create(&dto).Error
}
