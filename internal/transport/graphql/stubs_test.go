package graphql

import (
	"context"
	"strings"

	"github.com/cimillas/crm-graphql/internal/app"
	"github.com/cimillas/crm-graphql/internal/domain"
)

type stubCustomers struct {
	created  domain.Customer
	err      error
	bulk     app.BulkCreateResult
	bulkErr  error
	lastIn   app.CreateCustomerInput
	lastBulk []app.CreateCustomerInput
}

func (s *stubCustomers) CreateCustomer(_ context.Context, in app.CreateCustomerInput) (domain.Customer, error) {
	s.lastIn = in
	if s.err != nil {
		return domain.Customer{}, s.err
	}
	return s.created, nil
}

func (s *stubCustomers) BulkCreateCustomers(_ context.Context, items []app.CreateCustomerInput) (app.BulkCreateResult, error) {
	s.lastBulk = items
	return s.bulk, s.bulkErr
}

type stubProducts struct {
	created domain.Product
	err     error
	lastIn  app.CreateProductInput
}

func (s *stubProducts) CreateProduct(_ context.Context, in app.CreateProductInput) (domain.Product, error) {
	s.lastIn = in
	if s.err != nil {
		return domain.Product{}, s.err
	}
	return s.created, nil
}

type stubOrders struct {
	created domain.Order
	err     error
	lastIn  app.CreateOrderInput
}

func (s *stubOrders) CreateOrder(_ context.Context, in app.CreateOrderInput) (domain.Order, error) {
	s.lastIn = in
	if s.err != nil {
		return domain.Order{}, s.err
	}
	return s.created, nil
}

type stubQueries struct {
	customers []domain.Customer
	products  []domain.Product
	orders    []domain.Order
	listErr   error

	lastOrderBy        []string
	lastCustomerFilter domain.CustomerFilter
	lastProductFilter  domain.ProductFilter
	lastOrderFilter    domain.OrderFilter
}

func (s *stubQueries) ListCustomers(_ context.Context, filter domain.CustomerFilter, orderBy []string) ([]domain.Customer, error) {
	s.lastCustomerFilter = filter
	s.lastOrderBy = orderBy
	return s.customers, s.listErr
}

func (s *stubQueries) ListProducts(_ context.Context, filter domain.ProductFilter, orderBy []string) ([]domain.Product, error) {
	s.lastProductFilter = filter
	s.lastOrderBy = orderBy
	return s.products, s.listErr
}

func (s *stubQueries) ListOrders(_ context.Context, filter domain.OrderFilter, orderBy []string) ([]domain.Order, error) {
	s.lastOrderFilter = filter
	s.lastOrderBy = orderBy
	return s.orders, s.listErr
}

func (s *stubQueries) GetCustomer(_ context.Context, customerID string) (domain.Customer, error) {
	for _, c := range s.customers {
		if strings.EqualFold(c.ID, customerID) {
			return c, nil
		}
	}
	return domain.Customer{}, domain.ErrCustomerNotFound
}

func (s *stubQueries) ProductsByIDs(_ context.Context, productIDs []string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range s.products {
		for _, id := range productIDs {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}
