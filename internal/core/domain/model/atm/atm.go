package atm

import (
	"errors"
	"fmt"
	"strings"

	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/pkg/errs"
	"cashrun/internal/pkg/guard"
)

// Domain errors for ATM operations.
var (
	// ErrNameIsRequired is returned when an ATM is registered without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAddressIsRequired is returned when an ATM is registered without a street address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrAtmIsNotConstructed is returned when using an improperly initialized Atm.
	ErrAtmIsNotConstructed = errors.New("Atm must be created via NewAtm or RestoreAtm constructor")
)

// Status is the availability of an ATM for new withdrawals.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	if s != StatusActive && s != StatusInactive {
		return errs.NewValueIsInvalidErrorWithCause("atm status", fmt.Errorf("%q is not a valid atm status", string(s)))
	}
	return nil
}

// Atm is a cash withdrawal location a runner can be sent to.
//
// Name, address and coordinates are fixed once registered; only the status
// changes, when an operator takes the machine out of (or back into) service.
//
// Example usage:
//
//	point, _ := kernel.NewGeoPoint(40.7411, -73.9897)
//	a, err := atm.NewAtm(kernel.NewUUID(), "Chase 23rd St", "200 5th Ave, New York", point)
//	if err != nil {
//	    return err
//	}
//	meters, _ := a.DistanceTo(customerPoint)
type Atm struct {
	id       kernel.UUID
	name     string
	address  string
	location kernel.GeoPoint
	status   Status
	guard    guard.ConstructorGuard
}

// NewAtm registers a new ATM in active status.
//
// Parameters:
//   - id: unique identifier (must be valid UUID)
//   - name: display name (must be non-blank)
//   - address: street address shown to runners (must be non-blank)
//   - location: validated coordinates
//
// Returns:
//   - *Atm: the active ATM
//   - error: joined validation errors for every invalid parameter
func NewAtm(id kernel.UUID, name, address string, location kernel.GeoPoint) (*Atm, error) {
	return RestoreAtm(id, name, address, location, StatusActive)
}

// RestoreAtm rebuilds an ATM read from storage.
func RestoreAtm(id kernel.UUID, name, address string, location kernel.GeoPoint, status Status) (*Atm, error) {
	a := &Atm{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setAddress(address),
		a.setLocation(location),
		a.setStatus(status),
	); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Atm) Validate() error {
	if a == nil {
		return ErrAtmIsNotConstructed
	}
	return a.guard.Validate(ErrAtmIsNotConstructed)
}

func (a *Atm) IsEqual(other *Atm) bool {
	return other != nil && a.id.IsEqual(other.id)
}

func (a *Atm) ID() kernel.UUID {
	return a.id
}

func (a *Atm) Name() string {
	return a.name
}

func (a *Atm) Address() string {
	return a.address
}

func (a *Atm) Location() kernel.GeoPoint {
	return a.location
}

func (a *Atm) Status() Status {
	return a.status
}

func (a *Atm) IsActive() bool {
	return a.status == StatusActive
}

// Activate puts the ATM back into service. Activating an active ATM is a no-op.
func (a *Atm) Activate() {
	a.status = StatusActive
}

// Deactivate takes the ATM out of service. Existing preferences pointing at
// it are kept and simply skipped by assignment until it is reactivated.
func (a *Atm) Deactivate() {
	a.status = StatusInactive
}

// SetStatus applies a validated status value.
func (a *Atm) SetStatus(status Status) error {
	return a.setStatus(status)
}

// DistanceTo returns the great-circle distance in meters from the ATM to point.
func (a *Atm) DistanceTo(point kernel.GeoPoint) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	return a.location.DistanceTo(point)
}

func (a *Atm) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Atm) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *Atm) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrAddressIsRequired
	}
	a.address = address
	return nil
}

func (a *Atm) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	a.location = location
	return nil
}

func (a *Atm) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}
