// Package guard holds ConstructorGuard, a marker embedded in value objects and
// commands to tell an instance built by its constructor from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded by value into a struct and set by its constructor.
//
//	type ReasonCode struct {
//	    code  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (r ReasonCode) Validate() error {
//	    return r.guard.Validate(ErrReasonCodeIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
