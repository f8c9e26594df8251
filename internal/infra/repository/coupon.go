package repository

import (
	"context"

	"storefront/internal/domain/coupon"
	"storefront/internal/infra"
	"storefront/internal/usecase/commands"

	"github.com/google/uuid"
)

type CouponRepository struct {
	db DBTX
}

func NewCouponRepository(db DBTX) *CouponRepository {
	return &CouponRepository{db: db}
}

const couponColumns = `id, code, discount_amount, expires_at, used_count, min_order_value, max_uses`

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*commands.CouponSnapshot, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE code = $1`,
		coupon.Normalize(code),
	)

	snap, err := scanCouponSnapshot(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	return snap, nil
}

func (r *CouponRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.CouponSnapshot, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE id = $1`, id)

	snap, err := scanCouponSnapshot(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by ID", err)
	}
	return snap, nil
}

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`INSERT INTO coupons (code, discount_amount, expires_at, used_count, min_order_value, max_uses)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		c.Code().String(), c.DiscountAmount(), c.ExpiresAt(), c.UsedCount(), c.MinOrderValue(), c.MaxUses(),
	).Scan(&id)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("coupon code already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create coupon", err)
	}
	return id, nil
}

type CouponPatch = commands.CouponPatch

// Update patches the mutable fields. used_count is deliberately not
// patchable: it only moves through Redeem.
func (r *CouponRepository) Update(ctx context.Context, id uuid.UUID, patch CouponPatch) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE coupons
		 SET code            = COALESCE($2, code),
		     discount_amount = COALESCE($3, discount_amount),
		     expires_at      = COALESCE($4, expires_at),
		     min_order_value = COALESCE($5, min_order_value),
		     max_uses        = COALESCE($6, max_uses),
		     updated_at      = now()
		 WHERE id = $1`,
		id, patch.Code, patch.DiscountAmount, patch.ExpiresAt, patch.MinOrderValue, patch.MaxUses,
	)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return infra.WrapRepoErr("coupon code already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

// Redeem increments used_count by one, but only while the usage cap is not
// exhausted. The conditional UPDATE is a single atomic statement, so
// concurrent checkouts racing on one coupon cannot overcount: exactly
// max_uses redemptions succeed, the rest see KindConflict.
func (r *CouponRepository) Redeem(ctx context.Context, db DBTX, code string) error {
	tag, err := db.Exec(ctx,
		`UPDATE coupons
		 SET used_count = used_count + 1, updated_at = now()
		 WHERE code = $1 AND (max_uses IS NULL OR used_count < max_uses)`,
		coupon.Normalize(code),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to redeem coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon unavailable for redemption", nil, infra.KindConflict)
	}
	return nil
}

func scanCouponSnapshot(row interface{ Scan(dest ...any) error }) (*commands.CouponSnapshot, error) {
	var snap commands.CouponSnapshot
	err := row.Scan(
		&snap.ID,
		&snap.Code,
		&snap.DiscountAmount,
		&snap.ExpiresAt,
		&snap.UsedCount,
		&snap.MinOrderValue,
		&snap.MaxUses,
	)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
