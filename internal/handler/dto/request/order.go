package request

import (
	"strings"

	"storefront/internal/domain/order"

	"github.com/shopspring/decimal"
)

type OrderItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Quantity  int32   `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price" binding:"min=0"`
}

type ShippingAddressRequest struct {
	FullName string `json:"fullName" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,min=5,max=100"`
	Phone    string `json:"phone" binding:"required,min=7,max=15"`
	Address  string `json:"address" binding:"required,min=5,max=200"`
	City     string `json:"city" binding:"required,min=1,max=50"`
	State    string `json:"state" binding:"required,min=1,max=50"`
	Zip      string `json:"zip" binding:"required,min=4,max=10"`
}

type ShippingRequest struct {
	Method  string                 `json:"method" binding:"required,oneof=free standard express"`
	Cost    float64                `json:"cost" binding:"min=0"`
	Address ShippingAddressRequest `json:"address" binding:"required"`
}

// CreateOrderRequest carries amount in minor currency units (e.g. cents);
// it is converted to a major-unit decimal on storage.
type CreateOrderRequest struct {
	Items    []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Shipping ShippingRequest    `json:"shipping" binding:"required"`
	Coupon   *string            `json:"coupon,omitempty"`
	Discount float64            `json:"discount" binding:"min=0"`
	Amount   int64              `json:"amount" binding:"min=0"`
}

func (r CreateOrderRequest) GetCouponCode() *string {
	if r.Coupon == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Coupon)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CreateOrderRequest) ItemsToDomain() ([]order.Item, error) {
	items := make([]order.Item, 0, len(r.Items))
	for _, it := range r.Items {
		item, err := order.NewItem(it.ProductID, it.Quantity, decimal.NewFromFloat(it.Price))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r CreateOrderRequest) ShippingToDomain() (order.Shipping, error) {
	return order.NewShipping(
		r.Shipping.Method,
		decimal.NewFromFloat(r.Shipping.Cost),
		order.Address{
			FullName: r.Shipping.Address.FullName,
			Email:    r.Shipping.Address.Email,
			Phone:    r.Shipping.Address.Phone,
			Address:  r.Shipping.Address.Address,
			City:     r.Shipping.Address.City,
			State:    r.Shipping.Address.State,
			Zip:      r.Shipping.Address.Zip,
		},
	)
}
