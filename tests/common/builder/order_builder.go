//go:build unit || e2e

package builder

import (
	"time"

	domorder "storefront/internal/domain/order"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	Items     []reqdto.OrderItemRequest
	Method    string
	Cost      float64
	Address   reqdto.ShippingAddressRequest
	Coupon    *string
	Discount  float64
	Amount    int64
	CreatedAt time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		Items: []reqdto.OrderItemRequest{
			{ProductID: uuid.New().String(), Quantity: 2, Price: 49.99},
		},
		Method: "standard",
		Cost:   5,
		Address: reqdto.ShippingAddressRequest{
			FullName: "Jamie Doe",
			Email:    "jamie@example.com",
			Phone:    "5551234567",
			Address:  "1 Main Street",
			City:     "Springfield",
			State:    "IL",
			Zip:      "62701",
		},
		Discount:  0,
		Amount:    9998,
		CreatedAt: time.Now(),
	}
}

// Build methods
func (b *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		Items: b.Items,
		Shipping: reqdto.ShippingRequest{
			Method:  b.Method,
			Cost:    b.Cost,
			Address: b.Address,
		},
		Coupon:   b.Coupon,
		Discount: b.Discount,
		Amount:   b.Amount,
	}
}

func (b *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	req := b.BuildCreateRequestDTO()
	items, err := req.ItemsToDomain()
	if err != nil {
		return nil, err
	}
	shipping, err := req.ShippingToDomain()
	if err != nil {
		return nil, err
	}
	amount := decimal.NewFromInt(b.Amount).Div(decimal.NewFromInt(100))
	return domorder.NewOrder(items, shipping, b.Coupon, decimal.NewFromFloat(b.Discount), amount)
}

func (b *OrderBuilder) BuildViewQuery() *queries.OrderView {
	items := make([]queries.OrderItemView, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, queries.OrderItemView{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     decimal.NewFromFloat(it.Price),
		})
	}
	return &queries.OrderView{
		ID:             uuid.New(),
		Items:          items,
		ShippingMethod: b.Method,
		ShippingCost:   decimal.NewFromFloat(b.Cost),
		ShippingAddress: queries.ShippingAddressView{
			FullName: b.Address.FullName,
			Email:    b.Address.Email,
			Phone:    b.Address.Phone,
			Address:  b.Address.Address,
			City:     b.Address.City,
			State:    b.Address.State,
			Zip:      b.Address.Zip,
		},
		Coupon:        b.Coupon,
		Discount:      decimal.NewFromFloat(b.Discount),
		Amount:        decimal.NewFromInt(b.Amount).Div(decimal.NewFromInt(100)),
		PaymentStatus: "pending",
		CreatedAt:     b.CreatedAt,
	}
}

// Fluent builder methods
func (b *OrderBuilder) WithItems(items []reqdto.OrderItemRequest) *OrderBuilder {
	b.Items = items
	return b
}

func (b *OrderBuilder) WithMethod(method string) *OrderBuilder {
	b.Method = method
	return b
}

func (b *OrderBuilder) WithCost(cost float64) *OrderBuilder {
	b.Cost = cost
	return b
}

func (b *OrderBuilder) WithCoupon(code string) *OrderBuilder {
	b.Coupon = &code
	return b
}

func (b *OrderBuilder) WithAmount(amount int64) *OrderBuilder {
	b.Amount = amount
	return b
}
