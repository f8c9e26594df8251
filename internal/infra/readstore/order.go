package readstore

import (
	"context"

	"storefront/internal/infra"
	"storefront/internal/infra/repository"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadStore struct {
	db repository.DBTX
}

func NewOrderReadStore(db repository.DBTX) *OrderReadStore {
	return &OrderReadStore{db: db}
}

const orderViewColumns = `id, shipping_method, shipping_cost,
	ship_full_name, ship_email, ship_phone, ship_address, ship_city, ship_state, ship_zip,
	coupon, discount, amount, payment_status, created_at`

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderViewColumns+` FROM orders WHERE id = $1`, id)

	view, err := scanOrderView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	items, err := r.findItems(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Items = items
	return view, nil
}

func (r *OrderReadStore) List(ctx context.Context) ([]*queries.OrderView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderViewColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var views []*queries.OrderView
	for rows.Next() {
		view, err := scanOrderView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}

	for _, view := range views {
		items, err := r.findItems(ctx, view.ID)
		if err != nil {
			return nil, err
		}
		view.Items = items
	}
	return views, nil
}

func (r *OrderReadStore) findItems(ctx context.Context, orderID uuid.UUID) ([]queries.OrderItemView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT product_id, quantity, price
		 FROM order_items
		 WHERE order_id = $1
		 ORDER BY position`,
		orderID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	var items []queries.OrderItemView
	for rows.Next() {
		var item queries.OrderItemView
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.Price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order item rows", err)
	}
	return items, nil
}

func scanOrderView(row interface{ Scan(dest ...any) error }) (*queries.OrderView, error) {
	var view queries.OrderView
	err := row.Scan(
		&view.ID,
		&view.ShippingMethod,
		&view.ShippingCost,
		&view.ShippingAddress.FullName,
		&view.ShippingAddress.Email,
		&view.ShippingAddress.Phone,
		&view.ShippingAddress.Address,
		&view.ShippingAddress.City,
		&view.ShippingAddress.State,
		&view.ShippingAddress.Zip,
		&view.Coupon,
		&view.Discount,
		&view.Amount,
		&view.PaymentStatus,
		&view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
