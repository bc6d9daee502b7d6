// Package guard provides ConstructorGuard, a marker embedded in commands, queries and
// value objects to tell a value built by its constructor apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value was created through its constructor.
//
// Example:
//
//	var ErrGetDeliveryQueryIsNotConstructed = errors.New("GetDeliveryQuery must be created via NewGetDeliveryQuery")
//
//	type GetDeliveryQuery struct {
//	    id    string
//	    guard guard.ConstructorGuard
//	}
//
//	func (q GetDeliveryQuery) Validate() error {
//	    return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
