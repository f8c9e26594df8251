package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidName     = errors.New("product name must not be empty")
	ErrNegativePrice   = errors.New("product price cannot be negative")
	ErrInvalidRating   = errors.New("rating must be between 0 and 5")
	ErrNegativeStock   = errors.New("stock cannot be negative")
	ErrInvalidDiscount = errors.New("discount percent must be between 0 and 100")
)

type Product struct {
	id          uuid.UUID
	name        string
	description string
	price       decimal.Decimal
	imageURL    string
	category    string
	rating      float64
	isNew       bool
	discount    float64
	stock       int32
	usage       *string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProduct(
	name, description string,
	price decimal.Decimal,
	imageURL, category string,
	rating float64,
	isNew bool,
	discount float64,
	stock int32,
	usage *string,
) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if rating < 0 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if discount < 0 || discount > 100 {
		return nil, ErrInvalidDiscount
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}

	return &Product{
		id:          uuid.New(),
		name:        name,
		description: description,
		price:       price,
		imageURL:    imageURL,
		category:    category,
		rating:      rating,
		isNew:       isNew,
		discount:    discount,
		stock:       stock,
		usage:       usage,
	}, nil
}

func (p *Product) ID() uuid.UUID            { return p.id }
func (p *Product) Name() string             { return p.name }
func (p *Product) Description() string      { return p.description }
func (p *Product) Price() decimal.Decimal   { return p.price }
func (p *Product) ImageURL() string         { return p.imageURL }
func (p *Product) Category() string         { return p.category }
func (p *Product) Rating() float64          { return p.rating }
func (p *Product) IsNew() bool              { return p.isNew }
func (p *Product) Discount() float64        { return p.discount }
func (p *Product) Stock() int32             { return p.stock }
func (p *Product) Usage() *string           { return p.usage }
func (p *Product) CreatedAt() time.Time     { return p.createdAt }
func (p *Product) UpdatedAt() time.Time     { return p.updatedAt }
