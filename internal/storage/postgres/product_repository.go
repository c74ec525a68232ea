package postgres

import (
	"context"
	"fmt"

	"github.com/cimillas/crm-graphql/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id, name, price, stock, created_at`

type ProductRepository struct {
	db
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db{pool: pool}}
}

func (r *ProductRepository) CreateProduct(ctx context.Context, product domain.Product) error {
	const stmt = `
INSERT INTO products (id, name, price, stock, created_at)
VALUES ($1, $2, $3, $4, $5)`

	_, err := r.exec(ctx, stmt,
		product.ID,
		product.Name,
		toNumeric(product.Price),
		product.Stock,
		product.CreatedAt,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// findProductsByIDs returns the products among ids that exist, ordered by id.
func findProductsByIDs(ctx context.Context, d db, productIDs []string, lock string) ([]domain.Product, error) {
	query := `
SELECT ` + productColumns + `
FROM products
WHERE id = ANY($1::text[]::uuid[])
ORDER BY id` + lock

	rows, err := d.query(ctx, query, productIDs)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("find products: %w", err)
	}
	products, err := collectProducts(rows)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, err
	}
	return products, nil
}

func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var (
			p     domain.Product
			price pgtype.Numeric
		)
		if err := rows.Scan(&p.ID, &p.Name, &price, &p.Stock, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		dec, err := fromNumeric(price)
		if err != nil {
			return nil, fmt.Errorf("scan product price: %w", err)
		}
		p.Price = dec
		products = append(products, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate products: %w", rows.Err())
	}
	return products, nil
}
