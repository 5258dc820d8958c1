package queries

import (
	"context"

	"cashrun/internal/core/domain/model/atm"
	"cashrun/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetActiveAtmsQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveAtmsQueryHandler(db *gorm.DB) GetActiveAtmsQueryHandler {
	return GetActiveAtmsQueryHandler{db: db}
}

// Handle returns the active ATMs sorted by name.
func (h GetActiveAtmsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveAtmsQuery,
) ([]GetActiveAtmsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	atms := make([]GetActiveAtmsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			latitude,
			longitude
		FROM atm_locations
		WHERE status = ?
		ORDER BY name, id
	`, string(atm.StatusActive)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetActiveAtmsQueryResponse
		var id uuid.UUID
		var lat, lng float64

		if err = rows.Scan(&id, &item.Name, &item.Address, &lat, &lng); err != nil {
			return nil, err
		}

		atmID, idErr := kernel.UUIDFromGoogle(id)
		if idErr != nil {
			return nil, idErr
		}
		item.ID = atmID

		location, locErr := kernel.NewGeoPoint(lat, lng)
		if locErr != nil {
			return nil, locErr
		}
		item.Location = location
		atms = append(atms, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return atms, nil
}
