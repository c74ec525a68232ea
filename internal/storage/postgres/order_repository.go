package postgres

import (
	"context"
	"fmt"

	"github.com/cimillas/crm-graphql/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	db
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db{pool: pool}}
}

// GetCustomer locks the customer row against key changes until the
// surrounding transaction ends.
func (r *OrderRepository) GetCustomer(ctx context.Context, customerID string) (domain.Customer, error) {
	return getCustomer(ctx, r.db, customerID, lockClause(ctx))
}

func (r *OrderRepository) FindProductsByIDs(ctx context.Context, productIDs []string) ([]domain.Product, error) {
	return findProductsByIDs(ctx, r.db, productIDs, lockClause(ctx))
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order domain.Order) error {
	const stmt = `
INSERT INTO orders (id, customer_id, total_amount, order_date)
VALUES ($1, $2, $3, $4)`

	_, err := r.exec(ctx, stmt, order.ID, order.CustomerID, toNumeric(order.TotalAmount), order.OrderDate)
	if err != nil {
		if isForeignKeyViolation(err) || isInvalidUUID(err) {
			return domain.ErrInvalidCustomer
		}
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (r *OrderRepository) SetOrderProducts(ctx context.Context, orderID string, productIDs []string) error {
	const clear = `DELETE FROM order_products WHERE order_id = $1`
	const stmt = `
INSERT INTO order_products (order_id, product_id)
SELECT $1::uuid, product_id
FROM unnest($2::text[]::uuid[]) AS product_id
ON CONFLICT DO NOTHING`

	if _, err := r.exec(ctx, clear, orderID); err != nil {
		return fmt.Errorf("clear order products: %w", err)
	}
	if _, err := r.exec(ctx, stmt, orderID, productIDs); err != nil {
		if isForeignKeyViolation(err) || isInvalidUUID(err) {
			return domain.ErrInvalidProductIDs
		}
		return fmt.Errorf("set order products: %w", err)
	}
	return nil
}

func lockClause(ctx context.Context) string {
	if txFromContext(ctx) == nil {
		return ""
	}
	return "\nFOR KEY SHARE"
}
