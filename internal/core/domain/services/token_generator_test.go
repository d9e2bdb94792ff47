package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

type fakeTokenChecker struct {
	taken   map[string]bool
	asked   []string
	failAll bool
}

func (f *fakeTokenChecker) TokenExists(_ context.Context, token order.Token) (bool, error) {
	f.asked = append(f.asked, token.String())
	if f.failAll {
		return true, nil
	}
	return f.taken[token.String()], nil
}

func TestTokenGenerator_Generate(t *testing.T) {
	generator := services.NewTokenGenerator()

	t.Run("should produce a well-formed unique token", func(t *testing.T) {
		checker := &fakeTokenChecker{}

		token, err := generator.Generate(context.Background(), checker)

		require.NoError(t, err)
		assert.Len(t, token.String(), order.TokenLength)
		for _, c := range token.String() {
			inAlphabet := (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
			assert.True(t, inAlphabet, "character %q outside alphabet", c)
		}
	})

	t.Run("should retry until an unused token is found", func(t *testing.T) {
		checker := &fakeTokenChecker{taken: map[string]bool{}}

		first, err := generator.Generate(context.Background(), checker)
		require.NoError(t, err)

		// Mark everything generated so far as taken and generate again.
		for _, v := range checker.asked {
			checker.taken[v] = true
		}
		second, err := generator.Generate(context.Background(), checker)

		require.NoError(t, err)
		assert.False(t, first.IsEqual(second))
	})

	t.Run("should give up after the attempt budget", func(t *testing.T) {
		checker := &fakeTokenChecker{failAll: true}

		_, err := generator.Generate(context.Background(), checker)

		assert.ErrorIs(t, err, errs.ErrTokenExhausted)
		assert.Len(t, checker.asked, 100)
	})
}
