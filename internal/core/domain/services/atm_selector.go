package services

import (
	"errors"
	"math"
	"slices"

	"cashrun/internal/core/domain/model/atm"
	"cashrun/internal/core/domain/model/kernel"
)

// ErrAtmNotFound is returned when no active ATM is among the candidates.
var ErrAtmNotFound = errors.New("atm not found")

// Selection is the ATM picked for a delivery address together with its
// great-circle distance from the address.
type Selection struct {
	Atm            *atm.Atm
	DistanceMeters float64
}

// AtmSelector is a domain service that picks the withdrawal ATM for an
// address, either from the address's learned preferences or by distance.
//
// Business rules:
//   - Preferences are considered in rank order; the first one whose ATM is
//     active wins, no matter how far away it is
//   - Without a usable preference the nearest active ATM wins
//   - On equal distance the candidate seen first wins
//
// Coordinates are taken as given. Range checks belong to the caller.
//
// Example usage:
//
//	selector := NewAtmSelector()
//	if pref, ok := selector.Preferred(prefs); ok {
//	    // reuse pref.Atm()
//	}
//	sel, err := selector.Nearest(lat, lng, activeAtms)
//	if errors.Is(err, ErrAtmNotFound) {
//	    // no ATM can serve this address
//	}
type AtmSelector struct{}

// NewAtmSelector creates a new AtmSelector instance.
func NewAtmSelector() AtmSelector {
	return AtmSelector{}
}

// Preferred returns the highest ranked preference whose joined ATM is active.
// The input order is not trusted: preferences are re-ranked with a stable
// sort, so equal ranks keep their input order.
func (s AtmSelector) Preferred(preferences []*atm.Preference) (*atm.Preference, bool) {
	ranked := slices.Clone(preferences)
	slices.SortStableFunc(ranked, func(a, b *atm.Preference) int {
		switch {
		case a.RanksBefore(b):
			return -1
		case b.RanksBefore(a):
			return 1
		default:
			return 0
		}
	})

	for _, p := range ranked {
		if p.Validate() != nil {
			continue
		}
		if p.IsUsable() {
			return p, true
		}
	}
	return nil, false
}

// Nearest returns the active ATM closest to (lat, lng).
//
// Returns ErrAtmNotFound when atms holds no active, constructed ATM.
func (s AtmSelector) Nearest(lat, lng float64, atms []*atm.Atm) (Selection, error) {
	var (
		best     *atm.Atm
		bestDist = math.Inf(1)
	)

	for _, a := range atms {
		if a.Validate() != nil || !a.IsActive() {
			continue
		}

		d := s.Distance(lat, lng, a)
		if d < bestDist {
			bestDist = d
			best = a
		}
	}

	if best == nil {
		return Selection{}, ErrAtmNotFound
	}

	return Selection{Atm: best, DistanceMeters: bestDist}, nil
}

// Distance is the Haversine distance in meters between (lat, lng) and a.
func (s AtmSelector) Distance(lat, lng float64, a *atm.Atm) float64 {
	loc := a.Location()
	return kernel.HaversineMeters(lat, lng, loc.Lat(), loc.Lng())
}
