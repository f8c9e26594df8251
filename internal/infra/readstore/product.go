package readstore

import (
	"context"

	"storefront/internal/infra"
	"storefront/internal/infra/repository"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductReadStore struct {
	db repository.DBTX
}

func NewProductReadStore(db repository.DBTX) *ProductReadStore {
	return &ProductReadStore{db: db}
}

const productViewColumns = `id, name, description, price, image_url, category, rating, is_new, discount, stock, usage, created_at, updated_at`

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productViewColumns+` FROM products WHERE id = $1`, id)

	view, err := scanProductView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}
	return view, nil
}

func (r *ProductReadStore) List(ctx context.Context) ([]*queries.ProductView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productViewColumns+` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	var views []*queries.ProductView
	for rows.Next() {
		view, err := scanProductView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}
	return views, nil
}

func scanProductView(row interface{ Scan(dest ...any) error }) (*queries.ProductView, error) {
	var view queries.ProductView
	err := row.Scan(
		&view.ID,
		&view.Name,
		&view.Description,
		&view.Price,
		&view.ImageURL,
		&view.Category,
		&view.Rating,
		&view.IsNew,
		&view.Discount,
		&view.Stock,
		&view.Usage,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
