package app

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/cimillas/crm-graphql/internal/clock"
	"github.com/cimillas/crm-graphql/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetCustomer(ctx context.Context, customerID string) (domain.Customer, error)
	FindProductsByIDs(ctx context.Context, productIDs []string) ([]domain.Product, error)
	CreateOrder(ctx context.Context, order domain.Order) error
	SetOrderProducts(ctx context.Context, orderID string, productIDs []string) error
}

type OrderService struct {
	repo  OrderRepository
	clock clock.Clock
}

func NewOrderService(repo OrderRepository, clk clock.Clock) *OrderService {
	return &OrderService{
		repo:  repo,
		clock: clk,
	}
}

type CreateOrderInput struct {
	CustomerID string
	ProductIDs []string
	OrderDate  *time.Time
}

// CreateOrder resolves the customer and every requested product, then stores
// the order, its product set and its total in a single transaction. Duplicate
// product ids count once.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (domain.Order, error) {
	orderDate := s.clock.Now()
	if in.OrderDate != nil {
		orderDate = in.OrderDate.UTC()
	}

	var result domain.Order
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		customerID, ok := canonicalID(in.CustomerID)
		if !ok {
			return domain.ErrInvalidCustomer
		}
		customer, err := s.repo.GetCustomer(txCtx, customerID)
		if err != nil {
			if errors.Is(err, domain.ErrCustomerNotFound) || errors.Is(err, domain.ErrInvalidID) {
				return domain.ErrInvalidCustomer
			}
			return err
		}

		if len(in.ProductIDs) == 0 {
			return domain.ErrNoProductsSelected
		}
		productIDs, ok := uniqueIDs(in.ProductIDs)
		if !ok {
			return domain.ErrInvalidProductIDs
		}
		products, err := s.repo.FindProductsByIDs(txCtx, productIDs)
		if err != nil {
			return err
		}
		if len(products) != len(productIDs) {
			return domain.ErrInvalidProductIDs
		}

		order := domain.Order{
			ID:          newID(),
			CustomerID:  customer.ID,
			ProductIDs:  productIDs,
			TotalAmount: orderTotal(products),
			OrderDate:   orderDate,
		}
		if err := s.repo.CreateOrder(txCtx, order); err != nil {
			return err
		}
		if err := s.repo.SetOrderProducts(txCtx, order.ID, order.ProductIDs); err != nil {
			return err
		}
		result = order
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return result, nil
}

// uniqueIDs canonicalizes, dedupes and sorts ids. It reports false if any id
// is not a uuid.
func uniqueIDs(ids []string) ([]string, bool) {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, raw := range ids {
		id, ok := canonicalID(raw)
		if !ok {
			return nil, false
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out, true
}

func orderTotal(products []domain.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}
	return total
}
