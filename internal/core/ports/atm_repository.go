package ports

import (
	"context"

	"cashrun/internal/core/domain/model/atm"
	"cashrun/internal/core/domain/model/kernel"
)

// AtmRepository defines the persistence contract for ATM locations.
type AtmRepository interface {
	// Add persists a newly registered ATM.
	Add(ctx context.Context, aggregate *atm.Atm) error

	// Update persists a status change of an existing ATM.
	Update(ctx context.Context, aggregate *atm.Atm) error

	// Get retrieves an ATM by id.
	// Returns errs.ObjectNotFoundError when the ATM does not exist.
	Get(ctx context.Context, id kernel.UUID) (*atm.Atm, error)

	// ListActive returns at most limit ATMs with status active. The order of
	// the result is stable for identical table contents.
	ListActive(ctx context.Context, limit int) ([]*atm.Atm, error)
}

// PreferenceRepository stores the learned address to ATM ranking hints.
type PreferenceRepository interface {
	// ListForAddress returns the preferences of an address ranked by
	// times used descending, then last used descending. Every preference
	// carries its joined ATM snapshot.
	ListForAddress(ctx context.Context, addressID kernel.UUID) ([]*atm.Preference, error)

	// Upsert inserts the preference or updates the existing (address, atm)
	// pair. The stored times_used never decreases.
	Upsert(ctx context.Context, preference *atm.Preference) error
}
