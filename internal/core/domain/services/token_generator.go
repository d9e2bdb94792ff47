package services

import (
	"context"
	"math/rand/v2"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// tokenAlphabet is the character set pickup tokens are drawn from.
// Uppercase letters and digits only, so tokens survive being read aloud
// or written on a bag.
const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// maxTokenAttempts bounds collision retries before generation gives up.
const maxTokenAttempts = 100

// TokenChecker reports whether a candidate token is already taken.
// Implementations typically consult the order store.
type TokenChecker interface {
	TokenExists(ctx context.Context, token order.Token) (bool, error)
}

// TokenGenerator is a domain service producing unique pickup tokens.
//
// Generation draws random candidates from the uppercase alphanumeric
// alphabet and asks the checker whether each is taken, retrying on
// collisions. Uniqueness against concurrent writers is ultimately
// guaranteed by the storage uniqueness constraint on the token column;
// the checker only keeps retries cheap.
type TokenGenerator struct {
	intN func(n int) int
}

// NewTokenGenerator creates a TokenGenerator backed by the shared
// pseudo-random source.
func NewTokenGenerator() TokenGenerator {
	return TokenGenerator{intN: rand.IntN}
}

// Generate returns a token no persisted order currently carries.
// Returns TokenExhaustedError when the attempt budget runs out, which in
// practice signals the token space is nearly full.
func (g TokenGenerator) Generate(ctx context.Context, checker TokenChecker) (order.Token, error) {
	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		candidate, err := order.NewToken(g.randomValue())
		if err != nil {
			return order.Token{}, err
		}

		taken, err := checker.TokenExists(ctx, candidate)
		if err != nil {
			return order.Token{}, err
		}
		if !taken {
			return candidate, nil
		}
	}
	return order.Token{}, errs.NewTokenExhaustedError(maxTokenAttempts)
}

func (g TokenGenerator) randomValue() string {
	buf := make([]byte, order.TokenLength)
	for i := range buf {
		buf[i] = tokenAlphabet[g.intN(len(tokenAlphabet))]
	}
	return string(buf)
}
