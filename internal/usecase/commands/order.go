package commands

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/domain/coupon"
	"storefront/internal/domain/order"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/infra"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// CouponRejectedError carries the human-readable reason a coupon was refused
// at checkout. The message is returned to the client verbatim.
type CouponRejectedError struct {
	Message string
}

func (e *CouponRejectedError) Error() string {
	return e.Message
}

type OrderRepository interface {
	Create(ctx context.Context, db DBTX, o *order.Order) (uuid.UUID, error)
}

type OrderCommands interface {
	PlaceOrder(ctx context.Context, req reqdto.CreateOrderRequest) (uuid.UUID, error)
}

type orderCommandsImpl struct {
	orderRepo  OrderRepository
	couponRepo CouponRepository
	checker    CouponChecker
	db         *pgxpool.Pool
}

func NewOrderCommands(
	orderRepo OrderRepository,
	couponRepo CouponRepository,
	checker CouponChecker,
	db *pgxpool.Pool,
) OrderCommands {
	return &orderCommandsImpl{
		orderRepo:  orderRepo,
		couponRepo: couponRepo,
		checker:    checker,
		db:         db,
	}
}

// PlaceOrder validates the submitted coupon (if any), then redeems it and
// persists the order in one transaction. The conditional redemption is what
// actually enforces the usage cap under concurrency; the upfront check only
// produces the rejection message.
func (o *orderCommandsImpl) PlaceOrder(ctx context.Context, req reqdto.CreateOrderRequest) (uuid.UUID, error) {
	items, err := req.ItemsToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	shipping, err := req.ShippingToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	// The client submits the total in minor units; storage and the coupon
	// rules both work in major units.
	amount := decimal.NewFromInt(req.Amount).Div(decimal.NewFromInt(100))

	discount := decimal.Zero
	couponCode := req.GetCouponCode()
	if couponCode != nil {
		subtotal := shipping.Cost.Add(amount)
		result, err := o.checker.Check(ctx, *couponCode, subtotal)
		if err != nil {
			return uuid.Nil, err
		}
		if !result.Valid {
			return uuid.Nil, &CouponRejectedError{Message: result.Message}
		}
		discount = result.DiscountAmount

		normalized := coupon.Normalize(*couponCode)
		couponCode = &normalized
	}

	entity, err := order.NewOrder(items, shipping, couponCode, discount, amount)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	return o.placeOrderTransaction(ctx, entity)
}

func (o *orderCommandsImpl) placeOrderTransaction(ctx context.Context, entity *order.Order) (uuid.UUID, error) {
	tx, err := o.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if code := entity.CouponCode(); code != nil {
		if err := o.couponRepo.Redeem(ctx, tx, *code); err != nil {
			// Losing the race to the last redemption reads the same as an
			// exhausted coupon found upfront.
			if infra.IsKind(err, infra.KindConflict) {
				return uuid.Nil, &CouponRejectedError{Message: coupon.MsgUsageLimitReached}
			}
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	orderID, err := o.orderRepo.Create(ctx, tx, entity)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return uuid.Nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	return orderID, nil
}
