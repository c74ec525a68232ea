package postgres

import (
	"context"
	"fmt"

	"github.com/cimillas/crm-graphql/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const customerColumns = `id, name, email, COALESCE(phone, ''), created_at`

type CustomerRepository struct {
	db
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{db: db{pool: pool}}
}

func (r *CustomerRepository) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	const query = `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`

	c, err := scanCustomer(r.queryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find customer by email: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepository) CreateCustomer(ctx context.Context, customer domain.Customer) error {
	const stmt = `
INSERT INTO customers (id, name, email, phone, created_at)
VALUES ($1, $2, $3, NULLIF($4, ''), $5)`

	_, err := r.exec(ctx, stmt,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.Phone,
		customer.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

func getCustomer(ctx context.Context, d db, customerID string, lock string) (domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1` + lock

	c, err := scanCustomer(d.queryRow(ctx, query, customerID))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Customer{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Customer{}, domain.ErrCustomerNotFound
		}
		return domain.Customer{}, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

func scanCustomer(row pgx.Row) (domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt)
	return c, err
}
