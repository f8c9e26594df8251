package order

import "errors"

var (
	ErrInvalidShippingMethod = errors.New("invalid shipping method")
	ErrInvalidPaymentStatus  = errors.New("invalid payment status")
)

type ShippingMethod string

const (
	ShippingFree     ShippingMethod = "free"
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
)

func (m ShippingMethod) String() string {
	return string(m)
}

func (m ShippingMethod) IsValid() bool {
	switch m {
	case ShippingFree, ShippingStandard, ShippingExpress:
		return true
	default:
		return false
	}
}

func NewShippingMethod(s string) (ShippingMethod, error) {
	m := ShippingMethod(s)
	if !m.IsValid() {
		return "", ErrInvalidShippingMethod
	}
	return m, nil
}

// PaymentStatus is declared with three states but nothing in this system
// transitions an order past "pending"; there is no payment capture.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	default:
		return false
	}
}
