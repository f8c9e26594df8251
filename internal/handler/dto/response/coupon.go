package response

import (
	"storefront/internal/domain/coupon"

	"github.com/shopspring/decimal"
)

// CheckCouponResponse mirrors the validator verdict. Field casing is part of
// the public contract.
type CheckCouponResponse struct {
	Valid          bool            `json:"valid"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	Message        string          `json:"message,omitempty"`
}

func NewCheckCouponResponse(result coupon.CheckResult) CheckCouponResponse {
	return CheckCouponResponse{
		Valid:          result.Valid,
		DiscountAmount: result.DiscountAmount,
		Message:        result.Message,
	}
}
