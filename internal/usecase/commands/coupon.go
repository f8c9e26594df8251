package commands

import (
	"context"

	"storefront/internal/domain/coupon"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCouponNotFound          = errs.New("coupon not found")
	ErrDuplicateCouponCode     = errs.New("coupon code already exists")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (*CouponSnapshot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CouponSnapshot, error)
	Create(ctx context.Context, c *coupon.Coupon) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, patch CouponPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
	Redeem(ctx context.Context, db DBTX, code string) error
}

// CouponChecker evaluates a coupon against a subtotal without mutating any
// state. Both the public check endpoint and order placement go through it,
// so the two can never disagree on a verdict.
type CouponChecker interface {
	Check(ctx context.Context, code string, subtotal decimal.Decimal) (coupon.CheckResult, error)
}

type couponCheckerImpl struct {
	couponRepo CouponRepository
	clock      clock.Clock
}

func NewCouponChecker(couponRepo CouponRepository, clock clock.Clock) CouponChecker {
	return &couponCheckerImpl{couponRepo: couponRepo, clock: clock}
}

func (c *couponCheckerImpl) Check(ctx context.Context, code string, subtotal decimal.Decimal) (coupon.CheckResult, error) {
	// A malformed code can never match a stored coupon, so it reports the
	// same way as an unknown one.
	if _, err := coupon.NewCode(code); err != nil {
		return coupon.NotFoundResult(), nil
	}

	snap, err := c.couponRepo.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return coupon.NotFoundResult(), nil
		}
		return coupon.CheckResult{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := snapshotToCoupon(snap)
	if err != nil {
		return coupon.CheckResult{}, errs.Mark(err, ErrDomainValidation)
	}

	return entity.Check(subtotal, c.clock.Now()), nil
}

func snapshotToCoupon(snap *CouponSnapshot) (*coupon.Coupon, error) {
	return coupon.NewCoupon(
		snap.ID,
		snap.Code,
		snap.DiscountAmount,
		snap.ExpiresAt,
		snap.UsedCount,
		snap.MinOrderValue,
		snap.MaxUses,
	)
}

type CouponCommands interface {
	Create(ctx context.Context, req reqdto.CreateCouponRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCouponRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type couponCommandsImpl struct {
	couponRepo CouponRepository
}

func NewCouponCommands(couponRepo CouponRepository) CouponCommands {
	return &couponCommandsImpl{couponRepo: couponRepo}
}

func (c *couponCommandsImpl) Create(ctx context.Context, req reqdto.CreateCouponRequest) (uuid.UUID, error) {
	var minOrderValue *decimal.Decimal
	if req.MinOrderValue != nil {
		v := decimal.NewFromFloat(*req.MinOrderValue)
		minOrderValue = &v
	}

	entity, err := coupon.NewCoupon(
		uuid.New(),
		req.Code,
		decimal.NewFromFloat(req.DiscountAmount),
		req.ExpiresAt,
		0,
		minOrderValue,
		req.MaxUses,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := c.couponRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateCouponCode
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (c *couponCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCouponRequest) error {
	if _, err := c.couponRepo.FindByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCouponNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	patch := CouponPatch{
		ExpiresAt: req.ExpiresAt,
		MaxUses:   req.MaxUses,
	}
	if req.Code != nil {
		code, err := coupon.NewCode(*req.Code)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		normalized := code.String()
		patch.Code = &normalized
	}
	if req.DiscountAmount != nil {
		v := decimal.NewFromFloat(*req.DiscountAmount)
		patch.DiscountAmount = &v
	}
	if req.MinOrderValue != nil {
		v := decimal.NewFromFloat(*req.MinOrderValue)
		patch.MinOrderValue = &v
	}

	if err := c.couponRepo.Update(ctx, id, patch); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCouponNotFound
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrDuplicateCouponCode
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *couponCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.couponRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCouponNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
