// Package guard lets value objects, entities and commands tell a value built
// by its constructor apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types that must only be created through a
// constructor. Its zero value fails Validate; NewConstructorGuard marks the
// owning value as constructed.
//
//	type ApplyToJobCommand struct {
//	    jobID    kernel.UUID
//	    workerID kernel.UserID
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c ApplyToJobCommand) Validate() error {
//	    return c.guard.Validate(ErrApplyToJobCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
