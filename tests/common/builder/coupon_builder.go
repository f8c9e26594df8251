//go:build unit || e2e

package builder

import (
	"time"

	domcoupon "storefront/internal/domain/coupon"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponBuilder struct {
	ID             uuid.UUID
	Code           string
	DiscountAmount decimal.Decimal
	ExpiresAt      time.Time
	UsedCount      int32
	MinOrderValue  *decimal.Decimal
	MaxUses        *int32
	CreatedAt      time.Time
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Now()
	return &CouponBuilder{
		ID:             uuid.New(),
		Code:           "SAVE10",
		DiscountAmount: decimal.NewFromInt(10),
		ExpiresAt:      now.Add(24 * time.Hour),
		UsedCount:      0,
		CreatedAt:      now,
	}
}

// Build methods
func (b *CouponBuilder) BuildDomain() (*domcoupon.Coupon, error) {
	return domcoupon.NewCoupon(b.ID, b.Code, b.DiscountAmount, b.ExpiresAt, b.UsedCount, b.MinOrderValue, b.MaxUses)
}

func (b *CouponBuilder) BuildSnapshot() *commands.CouponSnapshot {
	return &commands.CouponSnapshot{
		ID:             b.ID,
		Code:           b.Code,
		DiscountAmount: b.DiscountAmount,
		ExpiresAt:      b.ExpiresAt,
		UsedCount:      b.UsedCount,
		MinOrderValue:  b.MinOrderValue,
		MaxUses:        b.MaxUses,
	}
}

func (b *CouponBuilder) BuildCreateRequestDTO() reqdto.CreateCouponRequest {
	amount, _ := b.DiscountAmount.Float64()
	req := reqdto.CreateCouponRequest{
		Code:           b.Code,
		DiscountAmount: amount,
		ExpiresAt:      b.ExpiresAt,
		MaxUses:        b.MaxUses,
	}
	if b.MinOrderValue != nil {
		v, _ := b.MinOrderValue.Float64()
		req.MinOrderValue = &v
	}
	return req
}

func (b *CouponBuilder) BuildViewQuery() *queries.CouponView {
	return &queries.CouponView{
		ID:             b.ID,
		Code:           b.Code,
		DiscountAmount: b.DiscountAmount,
		ExpiresAt:      b.ExpiresAt,
		UsedCount:      b.UsedCount,
		MinOrderValue:  b.MinOrderValue,
		MaxUses:        b.MaxUses,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}
}

// Fluent builder methods
func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.Code = code
	return b
}

func (b *CouponBuilder) WithDiscountAmount(amount decimal.Decimal) *CouponBuilder {
	b.DiscountAmount = amount
	return b
}

func (b *CouponBuilder) WithExpiresAt(expiresAt time.Time) *CouponBuilder {
	b.ExpiresAt = expiresAt
	return b
}

func (b *CouponBuilder) WithUsedCount(count int32) *CouponBuilder {
	b.UsedCount = count
	return b
}

func (b *CouponBuilder) WithMinOrderValue(value decimal.Decimal) *CouponBuilder {
	b.MinOrderValue = &value
	return b
}

func (b *CouponBuilder) WithMaxUses(maxUses int32) *CouponBuilder {
	b.MaxUses = &maxUses
	return b
}

func (b *CouponBuilder) AsExpired() *CouponBuilder {
	b.ExpiresAt = time.Now().Add(-time.Hour)
	return b
}

func (b *CouponBuilder) AsExhausted() *CouponBuilder {
	one := int32(1)
	b.MaxUses = &one
	b.UsedCount = 1
	return b
}
