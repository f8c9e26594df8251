package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is created once at checkout and never mutated afterwards. There is
// no cancellation, refund, or status transition.
type Order struct {
	id            uuid.UUID
	items         []Item
	shipping      Shipping
	couponCode    *string
	discount      decimal.Decimal
	amount        decimal.Decimal
	paymentStatus PaymentStatus
	createdAt     time.Time
}

// NewOrder assembles an order from already-validated parts. The amount is the
// final charged total in major currency units; the discount is the
// authoritative server-side value, never the client's.
func NewOrder(
	items []Item,
	shipping Shipping,
	couponCode *string,
	discount decimal.Decimal,
	amount decimal.Decimal,
) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	if discount.IsNegative() || amount.IsNegative() {
		return nil, ErrNegativePrice
	}

	return &Order{
		id:            uuid.New(),
		items:         items,
		shipping:      shipping,
		couponCode:    couponCode,
		discount:      discount,
		amount:        amount,
		paymentStatus: PaymentPending,
	}, nil
}

func (o *Order) ID() uuid.UUID                { return o.id }
func (o *Order) Items() []Item                { return o.items }
func (o *Order) Shipping() Shipping           { return o.shipping }
func (o *Order) CouponCode() *string          { return o.couponCode }
func (o *Order) Discount() decimal.Decimal    { return o.discount }
func (o *Order) Amount() decimal.Decimal      { return o.amount }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
