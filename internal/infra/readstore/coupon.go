package readstore

import (
	"context"

	"storefront/internal/infra"
	"storefront/internal/infra/repository"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponReadStore struct {
	db repository.DBTX
}

func NewCouponReadStore(db repository.DBTX) *CouponReadStore {
	return &CouponReadStore{db: db}
}

const couponViewColumns = `id, code, discount_amount, expires_at, used_count, min_order_value, max_uses, created_at, updated_at`

func (r *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+couponViewColumns+` FROM coupons WHERE id = $1`, id)

	view, err := scanCouponView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by ID", err)
	}
	return view, nil
}

func (r *CouponReadStore) List(ctx context.Context) ([]*queries.CouponView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+couponViewColumns+` FROM coupons ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	var views []*queries.CouponView
	for rows.Next() {
		view, err := scanCouponView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coupon rows", err)
	}
	return views, nil
}

func scanCouponView(row interface{ Scan(dest ...any) error }) (*queries.CouponView, error) {
	var view queries.CouponView
	err := row.Scan(
		&view.ID,
		&view.Code,
		&view.DiscountAmount,
		&view.ExpiresAt,
		&view.UsedCount,
		&view.MinOrderValue,
		&view.MaxUses,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
