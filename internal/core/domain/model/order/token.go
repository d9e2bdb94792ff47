package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// TokenLength is the fixed length of a pickup token.
const TokenLength = 8

// ErrTokenIsNotConstructed indicates a zero-value Token.
var ErrTokenIsNotConstructed = errs.NewValueIsRequiredError("Token must be created via NewToken")

// Token is the short human-presentable identifier of an order, distinct from
// its internal surrogate id. Customers share it to track the order; the
// kitchen and the courier use it to match the physical package.
//
// Tokens are fixed-length uppercase alphanumeric strings and are unique
// across persisted orders, guarded ultimately by a storage uniqueness
// constraint.
type Token struct {
	value string
}

// NewToken creates a Token from its string form, validating length and
// alphabet (uppercase letters and digits).
func NewToken(value string) (Token, error) {
	if value == "" {
		return Token{}, ErrTokenIsNotConstructed
	}
	if len(value) != TokenLength {
		return Token{}, errs.NewValueIsInvalidErrorWithCause("token is invalid",
			fmt.Errorf("length must be %d, got %d", TokenLength, len(value)))
	}
	for _, c := range value {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return Token{}, errs.NewValueIsInvalidErrorWithCause("token is invalid",
				fmt.Errorf("character %q is outside the uppercase alphanumeric alphabet", c))
		}
	}
	return Token{value: value}, nil
}

// String returns the token's string form.
func (t Token) String() string {
	return t.value
}

// IsEqual compares two tokens.
func (t Token) IsEqual(other Token) bool {
	return t.value == other.value
}

// Validate checks the token is properly constructed.
func (t Token) Validate() error {
	if t.value == "" {
		return ErrTokenIsNotConstructed
	}
	return nil
}
