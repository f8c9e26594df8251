//go:build unit

package order_test

import (
	"testing"

	"storefront/internal/domain/order"
	"storefront/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Len(t, actual.Items(), 1)
		assert.Equal(t, order.ShippingStandard, actual.Shipping().Method)
		assert.Equal(t, order.PaymentPending, actual.PaymentStatus())
		assert.Nil(t, actual.CouponCode())
		// 9998 minor units stored as 99.98
		assert.True(t, actual.Amount().Equal(decimal.NewFromFloat(99.98)))
	})

	t.Run("requires at least one item", func(t *testing.T) {
		_, err := builder.NewOrderBuilder().WithItems(nil).BuildDomain()
		assert.ErrorIs(t, err, order.ErrEmptyItems)
	})
}

func TestNewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		item, err := order.NewItem(uuid.New().String(), 1, decimal.NewFromFloat(9.99))
		require.NoError(t, err)
		assert.Equal(t, int32(1), item.Quantity)
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := order.NewItem(uuid.New().String(), 0, decimal.NewFromFloat(9.99))
		assert.ErrorIs(t, err, order.ErrInvalidQuantity)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := order.NewItem(uuid.New().String(), 1, decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, order.ErrNegativePrice)
	})
}

func TestNewShipping(t *testing.T) {
	address := order.Address{
		FullName: "Jamie Doe",
		Email:    "jamie@example.com",
		Phone:    "5551234567",
		Address:  "1 Main Street",
		City:     "Springfield",
		State:    "IL",
		Zip:      "62701",
	}

	t.Run("accepts the known methods", func(t *testing.T) {
		for _, method := range []string{"free", "standard", "express"} {
			_, err := order.NewShipping(method, decimal.Zero, address)
			assert.NoError(t, err, "method %q", method)
		}
	})

	t.Run("rejects unknown method", func(t *testing.T) {
		_, err := order.NewShipping("overnight", decimal.Zero, address)
		assert.ErrorIs(t, err, order.ErrInvalidShippingMethod)
	})

	t.Run("rejects incomplete address", func(t *testing.T) {
		incomplete := address
		incomplete.Zip = ""
		_, err := order.NewShipping("standard", decimal.Zero, incomplete)
		assert.ErrorIs(t, err, order.ErrInvalidAddress)
	})
}
