// Package guard holds the ConstructorGuard used by commands, queries and
// domain objects that may only be built through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Its zero value
// is "not constructed", so embedding it in a struct makes zero-value structs
// detectable:
//
//	type GetOrderQuery struct {
//	    id    int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewGetOrderQuery(id int) GetOrderQuery {
//	    return GetOrderQuery{id: id, guard: guard.NewConstructorGuard()}
//	}
//
//	func (q GetOrderQuery) Validate() error {
//	    return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
