package repository

import (
	"context"

	"storefront/internal/domain/order"
	"storefront/internal/infra"

	"github.com/google/uuid"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create persists the order header and its line items. The caller supplies
// the transaction so coupon redemption and order creation commit together.
func (r *OrderRepository) Create(ctx context.Context, db DBTX, o *order.Order) (uuid.UUID, error) {
	shipping := o.Shipping()
	addr := shipping.Address

	var id uuid.UUID
	err := db.QueryRow(ctx,
		`INSERT INTO orders (
			shipping_method, shipping_cost,
			ship_full_name, ship_email, ship_phone, ship_address, ship_city, ship_state, ship_zip,
			coupon, discount, amount, payment_status
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id`,
		shipping.Method.String(), shipping.Cost,
		addr.FullName, addr.Email, addr.Phone, addr.Address, addr.City, addr.State, addr.Zip,
		o.CouponCode(), o.Discount(), o.Amount(), o.PaymentStatus().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}

	for i, item := range o.Items() {
		_, err := db.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, price, position)
			 VALUES ($1, $2, $3, $4, $5)`,
			id, item.ProductID, item.Quantity, item.Price, i,
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create order item", err)
		}
	}

	return id, nil
}
