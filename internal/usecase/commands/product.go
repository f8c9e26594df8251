package commands

import (
	"context"

	"storefront/internal/domain/product"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/infra"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errs.New("product not found")

type ProductRepository interface {
	Create(ctx context.Context, p *product.Product) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, patch ProductPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductCommands interface {
	Create(ctx context.Context, req reqdto.CreateProductRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateProductRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productCommandsImpl struct {
	productRepo ProductRepository
}

func NewProductCommands(productRepo ProductRepository) ProductCommands {
	return &productCommandsImpl{productRepo: productRepo}
}

func (p *productCommandsImpl) Create(ctx context.Context, req reqdto.CreateProductRequest) (uuid.UUID, error) {
	entity, err := product.NewProduct(
		req.Name,
		req.Description,
		decimal.NewFromFloat(req.Price),
		req.ImageURL,
		req.Category,
		req.Rating,
		req.IsNew,
		req.Discount,
		req.Stock,
		req.Usage,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := p.productRepo.Create(ctx, entity)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (p *productCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateProductRequest) error {
	patch := ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Rating:      req.Rating,
		IsNew:       req.IsNew,
		Discount:    req.Discount,
		Stock:       req.Stock,
		Usage:       req.Usage,
	}
	if req.Price != nil {
		v := decimal.NewFromFloat(*req.Price)
		patch.Price = &v
	}

	if err := p.productRepo.Update(ctx, id, patch); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProductNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (p *productCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := p.productRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProductNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
