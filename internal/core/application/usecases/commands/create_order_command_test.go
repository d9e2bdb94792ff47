package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

func validItems() []commands.OrderItem {
	return []commands.OrderItem{
		{OfferingID: kernel.NewUUID(), Quantity: 2},
	}
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.Destination{}, order.PaymentCash, validItems(),
		)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Len(t, cmd.Items(), 1)
	})

	t.Run("should reject empty cart", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.Destination{}, order.PaymentCash, nil,
		)

		assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
	})

	t.Run("should reject invalid payment method", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.Destination{}, order.PaymentUnknown, validItems(),
		)

		assert.Error(t, err)
	})

	t.Run("should reject unconstructed ids", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
			order.Destination{}, order.PaymentCash, validItems(),
		)

		assert.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		assert.Error(t, cmd.Validate())
	})
}
