// Package atmrepo persists ATM locations and the per-address ATM preferences
// used to rank them.
package atmrepo

import (
	"time"

	"cashrun/internal/core/domain/model/atm"
	"cashrun/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type AtmDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:text;not null"`
	Address   string    `gorm:"type:text;not null"`
	Latitude  float64   `gorm:"not null"`
	Longitude float64   `gorm:"not null"`
	Status    string    `gorm:"type:text;not null;index"`
}

func (AtmDTO) TableName() string {
	return "atm_locations"
}

// PreferenceDTO is keyed by (customer_address_id, atm_id); one row per pair.
type PreferenceDTO struct {
	CustomerAddressID uuid.UUID `gorm:"type:uuid;primaryKey"`
	AtmID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TimesUsed         int       `gorm:"not null;default:1"`
	LastUsedAt        time.Time `gorm:"not null"`

	Atm *AtmDTO `gorm:"foreignKey:AtmID;references:ID"`
}

func (PreferenceDTO) TableName() string {
	return "address_atm_preferences"
}

func atmFromDomain(a *atm.Atm) AtmDTO {
	return AtmDTO{
		ID:        a.ID().Bytes(),
		Name:      a.Name(),
		Address:   a.Address(),
		Latitude:  a.Location().Lat(),
		Longitude: a.Location().Lng(),
		Status:    string(a.Status()),
	}
}

func atmToDomain(dto AtmDTO) (*atm.Atm, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return atm.RestoreAtm(id, dto.Name, dto.Address, location, atm.Status(dto.Status))
}

func preferenceFromDomain(p *atm.Preference) PreferenceDTO {
	return PreferenceDTO{
		CustomerAddressID: p.AddressID().Bytes(),
		AtmID:             p.AtmID().Bytes(),
		TimesUsed:         p.TimesUsed(),
		LastUsedAt:        p.LastUsedAt(),
	}
}

func preferenceToDomain(dto PreferenceDTO) (*atm.Preference, error) {
	addressID, err := kernel.UUIDFromGoogle(dto.CustomerAddressID)
	if err != nil {
		return nil, err
	}
	atmID, err := kernel.UUIDFromGoogle(dto.AtmID)
	if err != nil {
		return nil, err
	}

	var snapshot *atm.Atm
	if dto.Atm != nil {
		snapshot, err = atmToDomain(*dto.Atm)
		if err != nil {
			return nil, err
		}
	}

	return atm.RestorePreference(addressID, atmID, dto.TimesUsed, dto.LastUsedAt, snapshot)
}
