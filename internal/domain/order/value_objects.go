package order

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyItems      = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrInvalidAddress  = errors.New("incomplete shipping address")
)

// Item is a line item snapshot. Price is the unit price the client submitted
// at checkout time; it is not re-read from the catalog.
type Item struct {
	ProductID string
	Quantity  int32
	Price     decimal.Decimal
}

func NewItem(productID string, quantity int32, price decimal.Decimal) (Item, error) {
	if quantity < 1 {
		return Item{}, ErrInvalidQuantity
	}
	if price.IsNegative() {
		return Item{}, ErrNegativePrice
	}
	return Item{ProductID: productID, Quantity: quantity, Price: price}, nil
}

// Address is embedded in the order as a snapshot, not a foreign reference.
type Address struct {
	FullName string
	Email    string
	Phone    string
	Address  string
	City     string
	State    string
	Zip      string
}

func (a Address) Validate() error {
	if a.FullName == "" || a.Email == "" || a.Phone == "" ||
		a.Address == "" || a.City == "" || a.State == "" || a.Zip == "" {
		return ErrInvalidAddress
	}
	return nil
}

type Shipping struct {
	Method  ShippingMethod
	Cost    decimal.Decimal
	Address Address
}

func NewShipping(method string, cost decimal.Decimal, address Address) (Shipping, error) {
	m, err := NewShippingMethod(method)
	if err != nil {
		return Shipping{}, err
	}
	if cost.IsNegative() {
		return Shipping{}, ErrNegativePrice
	}
	if err := address.Validate(); err != nil {
		return Shipping{}, err
	}
	return Shipping{Method: m, Cost: cost, Address: address}, nil
}
