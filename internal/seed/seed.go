// Package seed loads the demo customers and products.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/cimillas/crm-graphql/internal/app"
	"github.com/cimillas/crm-graphql/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CustomerCreator interface {
	CreateCustomer(ctx context.Context, in app.CreateCustomerInput) (domain.Customer, error)
}

type ProductCreator interface {
	CreateProduct(ctx context.Context, in app.CreateProductInput) (domain.Product, error)
}

type ProductLister interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter, orderBy []string) ([]domain.Product, error)
}

var demoCustomers = []app.CreateCustomerInput{
	{Name: "Alice", Email: "alice@example.com", Phone: "+1234567890"},
	{Name: "Bob", Email: "bob@example.com", Phone: "123-456-7890"},
}

var demoProducts = []struct {
	name  string
	price string
	stock int
}{
	{name: "Laptop", price: "1000.00", stock: 5},
	{name: "Phone", price: "500.00", stock: 10},
}

type Result struct {
	CustomersCreated int
	CustomersSkipped int
	ProductsCreated  int
	ProductsSkipped  int
}

type Seeder struct {
	customers CustomerCreator
	products  ProductCreator
	catalog   ProductLister
	logger    *zap.Logger
}

func New(customers CustomerCreator, products ProductCreator, catalog ProductLister, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{customers: customers, products: products, catalog: catalog, logger: logger}
}

// Run creates the demo data through the services. Customers whose email is
// taken and products whose name already exists are skipped.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var res Result

	for _, in := range demoCustomers {
		customer, err := s.customers.CreateCustomer(ctx, in)
		if errors.Is(err, domain.ErrEmailTaken) {
			s.logger.Info("seed customer exists", zap.String("email", in.Email))
			res.CustomersSkipped++
			continue
		}
		if err != nil {
			return res, fmt.Errorf("seed customer %s: %w", in.Email, err)
		}
		s.logger.Info("seeded customer", zap.String("id", customer.ID), zap.String("email", customer.Email))
		res.CustomersCreated++
	}

	for _, p := range demoProducts {
		exists, err := s.productExists(ctx, p.name)
		if err != nil {
			return res, err
		}
		if exists {
			s.logger.Info("seed product exists", zap.String("name", p.name))
			res.ProductsSkipped++
			continue
		}

		stock := p.stock
		product, err := s.products.CreateProduct(ctx, app.CreateProductInput{
			Name:  p.name,
			Price: decimal.RequireFromString(p.price),
			Stock: &stock,
		})
		if err != nil {
			return res, fmt.Errorf("seed product %s: %w", p.name, err)
		}
		s.logger.Info("seeded product", zap.String("id", product.ID), zap.String("name", product.Name))
		res.ProductsCreated++
	}
	return res, nil
}

func (s *Seeder) productExists(ctx context.Context, name string) (bool, error) {
	products, err := s.catalog.ListProducts(ctx, domain.ProductFilter{NameContains: name}, nil)
	if err != nil {
		return false, fmt.Errorf("look up product %s: %w", name, err)
	}
	for _, p := range products {
		if p.Name == name {
			return true, nil
		}
	}
	return false, nil
}
