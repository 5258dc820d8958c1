package atm

import (
	"errors"
	"fmt"
	"time"

	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/pkg/errs"
	"cashrun/internal/pkg/guard"
)

var (
	// ErrPreferenceIsNotConstructed indicates that the Preference was not
	// initialized through NewPreference or RestorePreference.
	ErrPreferenceIsNotConstructed = errors.New("Preference must be created via NewPreference or RestorePreference constructor")

	// ErrPreferenceAtmMismatch indicates that the attached ATM snapshot does
	// not match the preference's ATM id.
	ErrPreferenceAtmMismatch = errors.New("preference atm snapshot does not match atm id")
)

// Preference is the ranking hint linking a customer delivery address to an ATM
// that was assigned to it before. It carries no ownership: the address and
// the ATM live independently and the preference is never deleted.
//
// Preferences of an address are ranked by TimesUsed descending, then by
// LastUsedAt descending.
//
// Key business rules:
//   - A new preference starts at TimesUsed = 1
//   - Touch increments TimesUsed by one and refreshes LastUsedAt
//   - TimesUsed never decreases
type Preference struct {
	addressID  kernel.UUID
	atmID      kernel.UUID
	timesUsed  int
	lastUsedAt time.Time

	// atm is the ATM row joined at read time; nil on freshly created preferences.
	atm *Atm

	guard guard.ConstructorGuard
}

// NewPreference records the first assignment of atmID to addressID.
func NewPreference(addressID, atmID kernel.UUID, now time.Time) (*Preference, error) {
	return RestorePreference(addressID, atmID, 1, now, nil)
}

// RestorePreference rebuilds a stored preference. snapshot may be nil when the
// ATM row was not loaded.
func RestorePreference(
	addressID, atmID kernel.UUID,
	timesUsed int,
	lastUsedAt time.Time,
	snapshot *Atm,
) (*Preference, error) {
	p := &Preference{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setAddressID(addressID),
		p.setAtmID(atmID),
		p.setTimesUsed(timesUsed),
		p.setLastUsedAt(lastUsedAt),
	); err != nil {
		return nil, err
	}

	if snapshot != nil {
		if err := snapshot.Validate(); err != nil {
			return nil, err
		}
		if !snapshot.ID().IsEqual(atmID) {
			return nil, ErrPreferenceAtmMismatch
		}
		p.atm = snapshot
	}

	return p, nil
}

func (p *Preference) Validate() error {
	if p == nil {
		return ErrPreferenceIsNotConstructed
	}
	return p.guard.Validate(ErrPreferenceIsNotConstructed)
}

func (p *Preference) AddressID() kernel.UUID {
	return p.addressID
}

func (p *Preference) AtmID() kernel.UUID {
	return p.atmID
}

func (p *Preference) TimesUsed() int {
	return p.timesUsed
}

func (p *Preference) LastUsedAt() time.Time {
	return p.lastUsedAt
}

// Atm returns the joined ATM snapshot, or nil if it was not loaded.
func (p *Preference) Atm() *Atm {
	return p.atm
}

// IsUsable reports whether the joined ATM exists and is active.
func (p *Preference) IsUsable() bool {
	return p.atm != nil && p.atm.IsActive()
}

// Touch records one more use of the preference at now.
func (p *Preference) Touch(now time.Time) {
	p.timesUsed++
	p.lastUsedAt = now
}

// RanksBefore reports whether p should be tried before other.
func (p *Preference) RanksBefore(other *Preference) bool {
	if p.timesUsed != other.timesUsed {
		return p.timesUsed > other.timesUsed
	}
	return p.lastUsedAt.After(other.lastUsedAt)
}

func (p *Preference) setAddressID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer address id", err)
	}
	p.addressID = id
	return nil
}

func (p *Preference) setAtmID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("atm id", err)
	}
	p.atmID = id
	return nil
}

func (p *Preference) setTimesUsed(timesUsed int) error {
	if timesUsed < 1 {
		return errs.NewValueIsInvalidErrorWithCause("times used is invalid",
			fmt.Errorf("%d is less than 1", timesUsed))
	}
	p.timesUsed = timesUsed
	return nil
}

func (p *Preference) setLastUsedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("last used at")
	}
	p.lastUsedAt = at
	return nil
}
