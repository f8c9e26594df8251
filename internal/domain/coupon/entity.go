package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeDiscount  = errors.New("discount amount cannot be negative")
	ErrUsageLimitReached = errors.New("coupon usage limit reached")
)

// Check result messages. Returned verbatim to clients, so they are part of
// the wire contract.
const (
	MsgNotFound          = "Coupon not found"
	MsgExpired           = "Coupon expired"
	MsgUsageLimitReached = "Coupon usage limit reached"
	msgMinOrderPrefix    = "Minimum order value is "
)

type Coupon struct {
	id             uuid.UUID
	code           Code
	discountAmount decimal.Decimal
	expiresAt      time.Time
	usedCount      int32
	minOrderValue  *decimal.Decimal
	maxUses        *int32
	createdAt      time.Time
	updatedAt      time.Time
}

func NewCoupon(
	id uuid.UUID,
	code string,
	discountAmount decimal.Decimal,
	expiresAt time.Time,
	usedCount int32,
	minOrderValue *decimal.Decimal,
	maxUses *int32,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	if discountAmount.IsNegative() {
		return nil, ErrNegativeDiscount
	}

	return &Coupon{
		id:             id,
		code:           couponCode,
		discountAmount: discountAmount,
		expiresAt:      expiresAt,
		usedCount:      usedCount,
		minOrderValue:  minOrderValue,
		maxUses:        maxUses,
	}, nil
}

// CheckResult reports whether the coupon may be applied to an order with the
// given subtotal, and the flat discount amount when it may.
type CheckResult struct {
	Valid          bool
	DiscountAmount decimal.Decimal
	Message        string
}

// NotFoundResult is the check outcome for a code with no matching coupon.
func NotFoundResult() CheckResult {
	return CheckResult{Valid: false, DiscountAmount: decimal.Zero, Message: MsgNotFound}
}

// Check evaluates the redemption rules in fixed order: expiry, minimum order
// value, usage cap. The first failing rule wins; an expired coupon below the
// minimum order value reports expiry, not the minimum.
func (c *Coupon) Check(subtotal decimal.Decimal, now time.Time) CheckResult {
	if c.expiresAt.Before(now) {
		return CheckResult{Valid: false, DiscountAmount: decimal.Zero, Message: MsgExpired}
	}

	if c.minOrderValue != nil && subtotal.LessThan(*c.minOrderValue) {
		return CheckResult{
			Valid:          false,
			DiscountAmount: decimal.Zero,
			Message:        msgMinOrderPrefix + c.minOrderValue.String(),
		}
	}

	if c.maxUses != nil && c.usedCount >= *c.maxUses {
		return CheckResult{Valid: false, DiscountAmount: decimal.Zero, Message: MsgUsageLimitReached}
	}

	return CheckResult{Valid: true, DiscountAmount: c.discountAmount}
}

func (c *Coupon) ID() uuid.UUID                   { return c.id }
func (c *Coupon) Code() Code                      { return c.code }
func (c *Coupon) DiscountAmount() decimal.Decimal { return c.discountAmount }
func (c *Coupon) ExpiresAt() time.Time            { return c.expiresAt }
func (c *Coupon) UsedCount() int32                { return c.usedCount }
func (c *Coupon) MinOrderValue() *decimal.Decimal { return c.minOrderValue }
func (c *Coupon) MaxUses() *int32                 { return c.maxUses }
func (c *Coupon) CreatedAt() time.Time            { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time            { return c.updatedAt }
