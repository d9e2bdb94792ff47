// Package guard provides a lightweight defensive-construction helper for
// value objects and commands. Embedding a ConstructorGuard in a struct makes
// zero-value instances detectable, so code paths can insist that an object
// came through its designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value guard
// is validated with a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether the embedding object was built through its
// constructor. The zero value always fails validation.
//
// Example:
//
//	type Token struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewToken(value string) (Token, error) {
//	    if value == "" {
//	        return Token{}, errors.New("value is required")
//	    }
//	    return Token{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (t Token) Validate() error {
//	    return t.guard.Validate(ErrTokenIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the embedding object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
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
