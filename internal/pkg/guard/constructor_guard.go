// Package guard marks values that were built through their constructor so
// that zero values of commands, queries and value objects can be rejected.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in a struct and set by its constructor.
// The zero value reports the struct as not constructed.
//
// Example:
//
//	type AssignAtmCommand struct {
//	    point kernel.GeoPoint
//	    guard guard.ConstructorGuard
//	}
//
//	func (c AssignAtmCommand) Validate() error {
//	    return c.guard.Validate(ErrAssignAtmCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard flagged as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value, nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
