//go:build unit || e2e

package builder

import (
	"time"

	domproduct "storefront/internal/domain/product"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	Category    string
	Rating      float64
	IsNew       bool
	Discount    float64
	Stock       int32
	Usage       *string
	CreatedAt   time.Time
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:          uuid.New(),
		Name:        "Rosewater Facial Toner",
		Description: "A gentle toner for daily use",
		Price:       decimal.NewFromFloat(24.50),
		ImageURL:    "https://cdn.example.com/products/toner.jpg",
		Category:    "skincare",
		Rating:      4.5,
		IsNew:       true,
		Discount:    0,
		Stock:       120,
		CreatedAt:   time.Now(),
	}
}

// Build methods
func (b *ProductBuilder) BuildDomain() (*domproduct.Product, error) {
	return domproduct.NewProduct(
		b.Name, b.Description, b.Price, b.ImageURL, b.Category,
		b.Rating, b.IsNew, b.Discount, b.Stock, b.Usage,
	)
}

func (b *ProductBuilder) BuildCreateRequestDTO() reqdto.CreateProductRequest {
	price, _ := b.Price.Float64()
	return reqdto.CreateProductRequest{
		Name:        b.Name,
		Description: b.Description,
		Price:       price,
		ImageURL:    b.ImageURL,
		Category:    b.Category,
		Rating:      b.Rating,
		IsNew:       b.IsNew,
		Discount:    b.Discount,
		Stock:       b.Stock,
		Usage:       b.Usage,
	}
}

func (b *ProductBuilder) BuildViewQuery() *queries.ProductView {
	return &queries.ProductView{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price,
		ImageURL:    b.ImageURL,
		Category:    b.Category,
		Rating:      b.Rating,
		IsNew:       b.IsNew,
		Discount:    b.Discount,
		Stock:       b.Stock,
		Usage:       b.Usage,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}

// Fluent builder methods
func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

func (b *ProductBuilder) WithPrice(price decimal.Decimal) *ProductBuilder {
	b.Price = price
	return b
}

func (b *ProductBuilder) WithRating(rating float64) *ProductBuilder {
	b.Rating = rating
	return b
}

func (b *ProductBuilder) WithDiscount(discount float64) *ProductBuilder {
	b.Discount = discount
	return b
}

func (b *ProductBuilder) WithStock(stock int32) *ProductBuilder {
	b.Stock = stock
	return b
}
