// Package guard provides the constructor-guard pattern used across the domain
// and application layers. Embedding a ConstructorGuard in a value object or
// command lets Validate distinguish properly constructed instances from zero
// values, keeping invariants enforced by constructors intact.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific validation error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. A zero-value guard fails validation, which catches domain
// objects instantiated as bare struct literals.
//
// Example:
//
//	type Shipment struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewShipment(id kernel.UUID) Shipment {
//	    return Shipment{id: id, guard: guard.NewConstructorGuard()}
//	}
//
//	func (s Shipment) Validate() error {
//	    return s.guard.Validate(ErrShipmentIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the owning object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was properly constructed. Otherwise it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
