package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

func TestNewGetCustomerOrdersQuery(t *testing.T) {
	t.Run("should create query with valid customer id", func(t *testing.T) {
		query, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID())

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
	})

	t.Run("should reject unconstructed customer id", func(t *testing.T) {
		_, err := queries.NewGetCustomerOrdersQuery(kernel.UUID{})
		assert.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetCustomerOrdersQuery
		assert.Error(t, query.Validate())
	})
}

func TestNewTrackOrderQuery(t *testing.T) {
	t.Run("should create query with valid token", func(t *testing.T) {
		token, err := order.NewToken("TRACK123")
		require.NoError(t, err)

		query, err := queries.NewTrackOrderQuery(token)

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.True(t, query.Token().IsEqual(token))
	})

	t.Run("should reject zero token", func(t *testing.T) {
		_, err := queries.NewTrackOrderQuery(order.Token{})
		assert.Error(t, err)
	})
}

func TestNewGetKitchenQueueQuery(t *testing.T) {
	query := queries.NewGetKitchenQueueQuery()
	assert.NoError(t, query.Validate())

	var zero queries.GetKitchenQueueQuery
	assert.Error(t, zero.Validate())
}

func TestNewGetCourierDeliveriesQuery(t *testing.T) {
	t.Run("should create query with valid courier id", func(t *testing.T) {
		query, err := queries.NewGetCourierDeliveriesQuery(kernel.NewUUID())

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
	})

	t.Run("should reject unconstructed courier id", func(t *testing.T) {
		_, err := queries.NewGetCourierDeliveriesQuery(kernel.UUID{})
		assert.Error(t, err)
	})
}
