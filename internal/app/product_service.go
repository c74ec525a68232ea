package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/cimillas/crm-graphql/internal/clock"
	"github.com/cimillas/crm-graphql/internal/domain"
	"github.com/shopspring/decimal"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product domain.Product) error
}

type ProductService struct {
	repo  ProductRepository
	clock clock.Clock
}

func NewProductService(repo ProductRepository, clk clock.Clock) *ProductService {
	return &ProductService{
		repo:  repo,
		clock: clk,
	}
}

// CreateProductInput carries a product to create. A nil Stock means 0.
type CreateProductInput struct {
	Name  string
	Price decimal.Decimal
	Stock *int
}

func (s *ProductService) CreateProduct(ctx context.Context, in CreateProductInput) (domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Product{}, fmt.Errorf("%w: name", domain.ErrMissingField)
	}

	price := in.Price.Round(2)
	if err := domain.ValidatePrice(price); err != nil {
		return domain.Product{}, err
	}
	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}
	if err := domain.ValidateStock(stock); err != nil {
		return domain.Product{}, err
	}

	product := domain.Product{
		ID:        newID(),
		Name:      name,
		Price:     price,
		Stock:     stock,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}
