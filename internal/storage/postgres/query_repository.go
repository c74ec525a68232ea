package postgres

import (
	"context"
	"fmt"

	"github.com/cimillas/crm-graphql/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	customerSortColumns = map[string]string{
		"name":      "name",
		"email":     "email",
		"phone":     "COALESCE(phone, '')",
		"createdAt": "created_at",
	}
	productSortColumns = map[string]string{
		"name":      "name",
		"price":     "price",
		"stock":     "stock",
		"createdAt": "created_at",
	}
	orderSortColumns = map[string]string{
		"orderDate":   "o.order_date",
		"totalAmount": "o.total_amount",
		"customerId":  "o.customer_id",
	}

	defaultCustomerSort = []domain.SortKey{{Field: "createdAt"}}
	defaultProductSort  = []domain.SortKey{{Field: "createdAt"}}
	defaultOrderSort    = []domain.SortKey{{Field: "orderDate"}}
)

// QueryRepository serves filtered, ordered listings.
type QueryRepository struct {
	db
}

func NewQueryRepository(pool *pgxpool.Pool) *QueryRepository {
	return &QueryRepository{db: db{pool: pool}}
}

func (r *QueryRepository) ListCustomers(ctx context.Context, filter domain.CustomerFilter, sortKeys []domain.SortKey) ([]domain.Customer, error) {
	var q listQuery
	if filter.NameContains != "" {
		q.where("name ILIKE $%d", containsPattern(filter.NameContains))
	}
	if filter.EmailContains != "" {
		q.where("email ILIKE $%d", containsPattern(filter.EmailContains))
	}
	if filter.CreatedAfter != nil {
		q.where("created_at >= $%d", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		q.where("created_at <= $%d", *filter.CreatedBefore)
	}
	if filter.PhonePrefix != "" {
		q.where("phone LIKE $%d", prefixPattern(filter.PhonePrefix))
	}
	order, err := orderClause(sortKeys, customerSortColumns, defaultCustomerSort, "id")
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + customerColumns + ` FROM customers` + q.whereClause() + order
	rows, err := r.query(ctx, query, q.args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate customers: %w", rows.Err())
	}
	return customers, nil
}

func (r *QueryRepository) ListProducts(ctx context.Context, filter domain.ProductFilter, sortKeys []domain.SortKey) ([]domain.Product, error) {
	var q listQuery
	if filter.NameContains != "" {
		q.where("name ILIKE $%d", containsPattern(filter.NameContains))
	}
	if filter.PriceMin != nil {
		q.where("price >= $%d", toNumeric(*filter.PriceMin))
	}
	if filter.PriceMax != nil {
		q.where("price <= $%d", toNumeric(*filter.PriceMax))
	}
	if filter.StockMin != nil {
		q.where("stock >= $%d", *filter.StockMin)
	}
	if filter.StockMax != nil {
		q.where("stock <= $%d", *filter.StockMax)
	}
	order, err := orderClause(sortKeys, productSortColumns, defaultProductSort, "id")
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + productColumns + ` FROM products` + q.whereClause() + order
	rows, err := r.query(ctx, query, q.args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return collectProducts(rows)
}

func (r *QueryRepository) ListOrders(ctx context.Context, filter domain.OrderFilter, sortKeys []domain.SortKey) ([]domain.Order, error) {
	var q listQuery
	if filter.TotalMin != nil {
		q.where("o.total_amount >= $%d", toNumeric(*filter.TotalMin))
	}
	if filter.TotalMax != nil {
		q.where("o.total_amount <= $%d", toNumeric(*filter.TotalMax))
	}
	if filter.OrderedAfter != nil {
		q.where("o.order_date >= $%d", *filter.OrderedAfter)
	}
	if filter.OrderedBefore != nil {
		q.where("o.order_date <= $%d", *filter.OrderedBefore)
	}
	if filter.CustomerName != "" {
		q.where("c.name ILIKE $%d", containsPattern(filter.CustomerName))
	}
	if filter.ProductName != "" {
		q.where(`EXISTS (
    SELECT 1 FROM order_products fp JOIN products p ON p.id = fp.product_id
    WHERE fp.order_id = o.id AND p.name ILIKE $%d)`, containsPattern(filter.ProductName))
	}
	if filter.ProductID != "" {
		q.where(`EXISTS (
    SELECT 1 FROM order_products fp
    WHERE fp.order_id = o.id AND fp.product_id = $%d::uuid)`, filter.ProductID)
	}
	order, err := orderClause(sortKeys, orderSortColumns, defaultOrderSort, "o.id")
	if err != nil {
		return nil, err
	}

	query := `
SELECT o.id, o.customer_id, o.total_amount, o.order_date,
  ARRAY(SELECT op.product_id::text FROM order_products op WHERE op.order_id = o.id ORDER BY op.product_id) AS product_ids
FROM orders o
JOIN customers c ON c.id = o.customer_id` + q.whereClause() + order

	rows, err := r.query(ctx, query, q.args...)
	if err != nil {
		if isInvalidUUID(err) {
			return []domain.Order{}, nil
		}
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var (
			o     domain.Order
			total pgtype.Numeric
		)
		if err := rows.Scan(&o.ID, &o.CustomerID, &total, &o.OrderDate, &o.ProductIDs); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if o.TotalAmount, err = fromNumeric(total); err != nil {
			return nil, fmt.Errorf("scan order total: %w", err)
		}
		orders = append(orders, o)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate orders: %w", rows.Err())
	}
	return orders, nil
}

func (r *QueryRepository) GetCustomer(ctx context.Context, customerID string) (domain.Customer, error) {
	return getCustomer(ctx, r.db, customerID, "")
}

func (r *QueryRepository) FindProductsByIDs(ctx context.Context, productIDs []string) ([]domain.Product, error) {
	return findProductsByIDs(ctx, r.db, productIDs, "")
}
