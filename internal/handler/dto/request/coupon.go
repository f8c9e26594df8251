package request

import "time"

type CheckCouponRequest struct {
	Code     string  `json:"code" binding:"required"`
	Subtotal float64 `json:"subtotal" binding:"min=0"`
}

type CreateCouponRequest struct {
	Code           string    `json:"code" binding:"required,min=3,max=20"`
	DiscountAmount float64   `json:"discountAmount" binding:"required,gt=0"`
	ExpiresAt      time.Time `json:"expiresAt" binding:"required"`
	MinOrderValue  *float64  `json:"minOrderValue,omitempty" binding:"omitempty,gt=0"`
	MaxUses        *int32    `json:"maxUses,omitempty" binding:"omitempty,gt=0"`
}

type UpdateCouponRequest struct {
	Code           *string    `json:"code,omitempty" binding:"omitempty,min=3,max=20"`
	DiscountAmount *float64   `json:"discountAmount,omitempty" binding:"omitempty,gt=0"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	MinOrderValue  *float64   `json:"minOrderValue,omitempty" binding:"omitempty,gt=0"`
	MaxUses        *int32     `json:"maxUses,omitempty" binding:"omitempty,gt=0"`
}
