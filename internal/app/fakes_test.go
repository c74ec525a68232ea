package app

import (
	"context"
	"sort"

	"github.com/cimillas/crm-graphql/internal/domain"
)

// fakeStore is an in-memory repository shared by the service tests.
type fakeStore struct {
	customers     map[string]domain.Customer
	products      map[string]domain.Product
	orders        map[string]domain.Order
	orderProducts map[string][]string

	txCount   int
	createErr error
	// failEmails makes CreateCustomer fail for the listed emails only.
	failEmails map[string]error

	listedCustomerKeys []domain.SortKey
	listedOrderFilter  domain.OrderFilter
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		customers:     make(map[string]domain.Customer),
		products:      make(map[string]domain.Product),
		orders:        make(map[string]domain.Order),
		orderProducts: make(map[string][]string),
	}
}

func (f *fakeStore) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.txCount++
	return fn(ctx)
}

func (f *fakeStore) FindCustomerByEmail(_ context.Context, email string) (*domain.Customer, error) {
	for _, c := range f.customers {
		if c.Email == email {
			copy := c
			return &copy, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateCustomer(_ context.Context, customer domain.Customer) error {
	if f.createErr != nil {
		return f.createErr
	}
	if err, ok := f.failEmails[customer.Email]; ok {
		return err
	}
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeStore) CreateProduct(_ context.Context, product domain.Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.products[product.ID] = product
	return nil
}

func (f *fakeStore) GetCustomer(_ context.Context, customerID string) (domain.Customer, error) {
	c, ok := f.customers[customerID]
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return c, nil
}

func (f *fakeStore) FindProductsByIDs(_ context.Context, productIDs []string) ([]domain.Product, error) {
	var out []domain.Product
	for _, id := range productIDs {
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) CreateOrder(_ context.Context, order domain.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.orders[order.ID] = order
	return nil
}

func (f *fakeStore) SetOrderProducts(_ context.Context, orderID string, productIDs []string) error {
	f.orderProducts[orderID] = append([]string(nil), productIDs...)
	return nil
}

func (f *fakeStore) ListCustomers(_ context.Context, _ domain.CustomerFilter, keys []domain.SortKey) ([]domain.Customer, error) {
	f.listedCustomerKeys = keys
	out := make([]domain.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) ListProducts(_ context.Context, _ domain.ProductFilter, _ []domain.SortKey) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeStore) ListOrders(_ context.Context, filter domain.OrderFilter, _ []domain.SortKey) ([]domain.Order, error) {
	f.listedOrderFilter = filter
	return []domain.Order{}, nil
}

func (f *fakeStore) addProduct(id, name, price string) domain.Product {
	p := domain.Product{ID: id, Name: name, Price: mustDecimal(price)}
	f.products[id] = p
	return p
}

func (f *fakeStore) addCustomer(id, name, email string) domain.Customer {
	c := domain.Customer{ID: id, Name: name, Email: email}
	f.customers[id] = c
	return c
}
