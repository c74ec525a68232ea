package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cimillas/crm-graphql/internal/clock"
	"github.com/cimillas/crm-graphql/internal/domain"
)

// CustomerCreatedMessage is returned alongside a newly created customer.
const CustomerCreatedMessage = "Customer created successfully"

type CustomerRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, customer domain.Customer) error
}

type CustomerService struct {
	repo  CustomerRepository
	clock clock.Clock
}

func NewCustomerService(repo CustomerRepository, clk clock.Clock) *CustomerService {
	return &CustomerService{
		repo:  repo,
		clock: clk,
	}
}

type CreateCustomerInput struct {
	Name  string
	Email string
	Phone string
}

// CreateCustomer checks required fields, email uniqueness and phone format,
// in that order, and persists the customer.
func (s *CustomerService) CreateCustomer(ctx context.Context, in CreateCustomerInput) (domain.Customer, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	if err := domain.ValidateRequired(in.Name, in.Email); err != nil {
		return domain.Customer{}, err
	}

	var result domain.Customer
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		if err := validateEmailUnique(txCtx, s.repo, in.Email); err != nil {
			return err
		}
		if err := domain.ValidatePhone(in.Phone); err != nil {
			return err
		}

		customer := domain.Customer{
			ID:        newID(),
			Name:      in.Name,
			Email:     in.Email,
			Phone:     in.Phone,
			CreatedAt: s.clock.Now(),
		}
		if err := s.repo.CreateCustomer(txCtx, customer); err != nil {
			return err
		}
		result = customer
		return nil
	})
	if err != nil {
		return domain.Customer{}, err
	}
	return result, nil
}

// BulkCreateResult holds the outcome of a bulk creation in input order.
type BulkCreateResult struct {
	Created []domain.Customer
	Errors  []ItemError
}

// ItemError describes why one bulk item was rejected.
type ItemError struct {
	Index int
	Email string
	Err   error
}

func (e ItemError) Error() string {
	switch {
	case errors.Is(e.Err, domain.ErrMissingField):
		return "name and email are required"
	case errors.Is(e.Err, domain.ErrEmailTaken):
		return fmt.Sprintf("email %s already exists", e.Email)
	case errors.Is(e.Err, domain.ErrInvalidPhone):
		return fmt.Sprintf("invalid phone format for %s", e.Email)
	default:
		return fmt.Sprintf("could not create customer %s", e.Email)
	}
}

func (e ItemError) Unwrap() error {
	return e.Err
}

// BulkCreateCustomers creates each item independently, in its own
// transaction. Any item failure is recorded against that item and the batch
// continues; only a cancelled context stops it, returning what was created
// so far.
func (s *CustomerService) BulkCreateCustomers(ctx context.Context, items []CreateCustomerInput) (BulkCreateResult, error) {
	result := BulkCreateResult{
		Created: make([]domain.Customer, 0, len(items)),
	}
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("bulk item %d: %w", i, err)
		}
		customer, err := s.CreateCustomer(ctx, item)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return result, fmt.Errorf("bulk item %d: %w", i, ctxErr)
			}
			result.Errors = append(result.Errors, ItemError{
				Index: i,
				Email: strings.TrimSpace(item.Email),
				Err:   err,
			})
			continue
		}
		result.Created = append(result.Created, customer)
	}
	return result, nil
}

func validateEmailUnique(ctx context.Context, repo CustomerRepository, email string) error {
	existing, err := repo.FindCustomerByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrEmailTaken
	}
	return nil
}
