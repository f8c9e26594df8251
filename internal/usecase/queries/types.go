package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type CouponView struct {
	ID             uuid.UUID        `json:"id"`
	Code           string           `json:"code"`
	DiscountAmount decimal.Decimal  `json:"discount_amount"`
	ExpiresAt      time.Time        `json:"expires_at"`
	UsedCount      int32            `json:"used_count"`
	MinOrderValue  *decimal.Decimal `json:"min_order_value,omitempty"`
	MaxUses        *int32           `json:"max_uses,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type OrderItemView struct {
	ProductID string          `json:"product_id"`
	Quantity  int32           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type ShippingAddressView struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
}

type OrderView struct {
	ID              uuid.UUID           `json:"id"`
	Items           []OrderItemView     `json:"items"`
	ShippingMethod  string              `json:"shipping_method"`
	ShippingCost    decimal.Decimal     `json:"shipping_cost"`
	ShippingAddress ShippingAddressView `json:"shipping_address"`
	Coupon          *string             `json:"coupon,omitempty"`
	Discount        decimal.Decimal     `json:"discount"`
	Amount          decimal.Decimal     `json:"amount"`
	PaymentStatus   string              `json:"payment_status"`
	CreatedAt       time.Time           `json:"created_at"`
}

type ProductView struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category"`
	Rating      float64         `json:"rating"`
	IsNew       bool            `json:"is_new"`
	Discount    float64         `json:"discount"`
	Stock       int32           `json:"stock"`
	Usage       *string         `json:"usage,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type UserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}
