package app

import (
	"context"
	"errors"

	"github.com/cimillas/crm-graphql/internal/domain"
)

type QueryRepository interface {
	ListCustomers(ctx context.Context, filter domain.CustomerFilter, sortKeys []domain.SortKey) ([]domain.Customer, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter, sortKeys []domain.SortKey) ([]domain.Product, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter, sortKeys []domain.SortKey) ([]domain.Order, error)
	GetCustomer(ctx context.Context, customerID string) (domain.Customer, error)
	FindProductsByIDs(ctx context.Context, productIDs []string) ([]domain.Product, error)
}

// QueryService serves read-only listings and reference resolution.
type QueryService struct {
	repo QueryRepository
}

func NewQueryService(repo QueryRepository) *QueryService {
	return &QueryService{repo: repo}
}

func (s *QueryService) ListCustomers(ctx context.Context, filter domain.CustomerFilter, orderBy []string) ([]domain.Customer, error) {
	keys, err := domain.ParseSortKeys(orderBy, domain.CustomerSortFields)
	if err != nil {
		return nil, err
	}
	return s.repo.ListCustomers(ctx, filter, keys)
}

func (s *QueryService) ListProducts(ctx context.Context, filter domain.ProductFilter, orderBy []string) ([]domain.Product, error) {
	keys, err := domain.ParseSortKeys(orderBy, domain.ProductSortFields)
	if err != nil {
		return nil, err
	}
	return s.repo.ListProducts(ctx, filter, keys)
}

func (s *QueryService) ListOrders(ctx context.Context, filter domain.OrderFilter, orderBy []string) ([]domain.Order, error) {
	keys, err := domain.ParseSortKeys(orderBy, domain.OrderSortFields)
	if err != nil {
		return nil, err
	}
	if filter.ProductID != "" {
		id, ok := canonicalID(filter.ProductID)
		if !ok {
			return []domain.Order{}, nil
		}
		filter.ProductID = id
	}
	return s.repo.ListOrders(ctx, filter, keys)
}

func (s *QueryService) GetCustomer(ctx context.Context, customerID string) (domain.Customer, error) {
	id, ok := canonicalID(customerID)
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	customer, err := s.repo.GetCustomer(ctx, id)
	if errors.Is(err, domain.ErrInvalidID) {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return customer, err
}

// ProductsByIDs returns the products that exist among ids, sorted by id.
func (s *QueryService) ProductsByIDs(ctx context.Context, productIDs []string) ([]domain.Product, error) {
	if len(productIDs) == 0 {
		return []domain.Product{}, nil
	}
	ids, ok := uniqueIDs(productIDs)
	if !ok {
		return nil, domain.ErrInvalidProductIDs
	}
	return s.repo.FindProductsByIDs(ctx, ids)
}
