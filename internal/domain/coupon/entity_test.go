//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"storefront/internal/domain/coupon"
	"storefront/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoupon(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "SAVE10", actual.Code().String())
		assert.True(t, actual.DiscountAmount().Equal(decimal.NewFromInt(10)))
		assert.Equal(t, int32(0), actual.UsedCount())
		assert.Nil(t, actual.MinOrderValue())
		assert.Nil(t, actual.MaxUses())
	})

	t.Run("code is normalized before validation", func(t *testing.T) {
		actual, err := builder.NewCouponBuilder().WithCode("  save10  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", actual.Code().String())
	})

	t.Run("rejects malformed codes", func(t *testing.T) {
		for _, code := range []string{"", "AB", "HAS SPACE", "lower-case!", "THISCODEISWAYTOOLONGFORTHECAP"} {
			_, err := builder.NewCouponBuilder().WithCode(code).BuildDomain()
			assert.ErrorIs(t, err, coupon.ErrInvalidCouponCode, "code %q", code)
		}
	})

	t.Run("rejects negative discount", func(t *testing.T) {
		_, err := builder.NewCouponBuilder().WithDiscountAmount(decimal.NewFromInt(-1)).BuildDomain()
		assert.ErrorIs(t, err, coupon.ErrNegativeDiscount)
	})
}

func TestCheck(t *testing.T) {
	now := time.Now()
	subtotal := decimal.NewFromInt(100)

	t.Run("valid coupon yields its discount amount", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)

		result := c.Check(subtotal, now)
		assert.True(t, result.Valid)
		assert.True(t, result.DiscountAmount.Equal(decimal.NewFromInt(10)))
		assert.Empty(t, result.Message)
	})

	t.Run("expired coupon", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().AsExpired().BuildDomain()
		require.NoError(t, err)

		result := c.Check(subtotal, now)
		assert.False(t, result.Valid)
		assert.True(t, result.DiscountAmount.IsZero())
		assert.Equal(t, coupon.MsgExpired, result.Message)
	})

	t.Run("subtotal below minimum order value", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().
			WithMinOrderValue(decimal.NewFromInt(150)).
			BuildDomain()
		require.NoError(t, err)

		result := c.Check(subtotal, now)
		assert.False(t, result.Valid)
		assert.Equal(t, "Minimum order value is 150", result.Message)
	})

	t.Run("subtotal exactly at minimum order value passes", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().
			WithMinOrderValue(decimal.NewFromInt(100)).
			BuildDomain()
		require.NoError(t, err)

		result := c.Check(subtotal, now)
		assert.True(t, result.Valid)
	})

	t.Run("usage limit reached", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().AsExhausted().BuildDomain()
		require.NoError(t, err)

		result := c.Check(subtotal, now)
		assert.False(t, result.Valid)
		assert.Equal(t, coupon.MsgUsageLimitReached, result.Message)
	})

	t.Run("usage below limit still passes", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().
			WithMaxUses(3).
			WithUsedCount(2).
			BuildDomain()
		require.NoError(t, err)

		result := c.Check(subtotal, now)
		assert.True(t, result.Valid)
	})

	t.Run("expiry is reported before minimum order value", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().
			AsExpired().
			WithMinOrderValue(decimal.NewFromInt(150)).
			BuildDomain()
		require.NoError(t, err)

		result := c.Check(subtotal, now)
		assert.Equal(t, coupon.MsgExpired, result.Message)
	})

	t.Run("minimum order value is reported before usage limit", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().
			AsExhausted().
			WithMinOrderValue(decimal.NewFromInt(150)).
			BuildDomain()
		require.NoError(t, err)

		result := c.Check(subtotal, now)
		assert.Equal(t, "Minimum order value is 150", result.Message)
	})

	t.Run("expiry boundary: expiring this instant is still valid", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithExpiresAt(now).BuildDomain()
		require.NoError(t, err)

		result := c.Check(subtotal, now)
		assert.True(t, result.Valid)
	})
}

func TestNotFoundResult(t *testing.T) {
	result := coupon.NotFoundResult()
	assert.False(t, result.Valid)
	assert.True(t, result.DiscountAmount.IsZero())
	assert.Equal(t, coupon.MsgNotFound, result.Message)
}
