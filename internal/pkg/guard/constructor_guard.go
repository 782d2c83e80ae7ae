// Package guard implements the constructor-guard pattern used by domain
// objects, commands and queries to reject zero-value instances that bypassed
// their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. Embedding a guard lets Validate distinguish properly
// constructed values from zero values, keeping invariants enforced on
// every code path that accepts the object.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the embedding object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was constructed, otherwise the supplied
// validation error (or ErrDefaultConstructorGuard when nil is passed).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
