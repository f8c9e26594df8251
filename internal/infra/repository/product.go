package repository

import (
	"context"
	"time"

	"storefront/internal/domain/product"
	"storefront/internal/infra"
	"storefront/internal/usecase/commands"

	"github.com/google/uuid"
)

type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`INSERT INTO products (name, description, price, image_url, category, rating, is_new, discount, stock, usage)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		p.Name(), p.Description(), p.Price(), p.ImageURL(), p.Category(),
		p.Rating(), p.IsNew(), p.Discount(), p.Stock(), p.Usage(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create product", err)
	}
	return id, nil
}

type ProductPatch = commands.ProductPatch

func (r *ProductRepository) Update(ctx context.Context, id uuid.UUID, patch ProductPatch) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products
		 SET name        = COALESCE($2, name),
		     description = COALESCE($3, description),
		     price       = COALESCE($4, price),
		     image_url   = COALESCE($5, image_url),
		     category    = COALESCE($6, category),
		     rating      = COALESCE($7, rating),
		     is_new      = COALESCE($8, is_new),
		     discount    = COALESCE($9, discount),
		     stock       = COALESCE($10, stock),
		     usage       = COALESCE($11, usage),
		     updated_at  = $12
		 WHERE id = $1`,
		id, patch.Name, patch.Description, patch.Price, patch.ImageURL, patch.Category,
		patch.Rating, patch.IsNew, patch.Discount, patch.Stock, patch.Usage, time.Now(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}
