package graphql

import (
	"context"
	"time"

	"github.com/cimillas/crm-graphql/internal/app"
	"github.com/cimillas/crm-graphql/internal/domain"
	graphqlgo "github.com/graph-gophers/graphql-go"
)

// orderResolver resolves the order's customer and products by id on demand.
type orderResolver struct {
	o       domain.Order
	queries Querier
	root    *Resolver
}

func (r *orderResolver) ID() graphqlgo.ID {
	return graphqlgo.ID(r.o.ID)
}

func (r *orderResolver) Customer(ctx context.Context) (*customerResolver, error) {
	customer, err := r.queries.GetCustomer(ctx, r.o.CustomerID)
	if err != nil {
		return nil, r.root.clientError("order.customer", err)
	}
	return &customerResolver{c: customer}, nil
}

func (r *orderResolver) Products(ctx context.Context) ([]*productResolver, error) {
	products, err := r.queries.ProductsByIDs(ctx, r.o.ProductIDs)
	if err != nil {
		return nil, r.root.clientError("order.products", err)
	}
	return newProductResolvers(products), nil
}

func (r *orderResolver) TotalAmount() float64 {
	return r.o.TotalAmount.InexactFloat64()
}

func (r *orderResolver) OrderDate() graphqlgo.Time {
	return graphqlgo.Time{Time: r.o.OrderDate}
}

func (r *Resolver) newOrderResolver(o domain.Order) *orderResolver {
	return &orderResolver{o: o, queries: r.svcs.Queries, root: r}
}

type createOrderArgs struct {
	CustomerID graphqlgo.ID
	ProductIDs []graphqlgo.ID
	OrderDate  *graphqlgo.Time
}

type createOrderPayload struct {
	order *orderResolver
}

func (p *createOrderPayload) Order() *orderResolver {
	return p.order
}

func (r *Resolver) CreateOrder(ctx context.Context, args createOrderArgs) (*createOrderPayload, error) {
	productIDs := make([]string, 0, len(args.ProductIDs))
	for _, id := range args.ProductIDs {
		productIDs = append(productIDs, string(id))
	}

	order, err := r.svcs.Orders.CreateOrder(ctx, app.CreateOrderInput{
		CustomerID: string(args.CustomerID),
		ProductIDs: productIDs,
		OrderDate:  timeValue(args.OrderDate),
	})
	if err != nil {
		return nil, r.mutationFailed("createOrder", err)
	}
	r.mutationSucceeded("createOrder")
	return &createOrderPayload{order: r.newOrderResolver(order)}, nil
}

type orderFilterInput struct {
	TotalAmountGte *float64
	TotalAmountLte *float64
	OrderDateGte   *graphqlgo.Time
	OrderDateLte   *graphqlgo.Time
	CustomerName   *string
	ProductName    *string
	ProductID      *graphqlgo.ID
}

func (f *orderFilterInput) toDomain() domain.OrderFilter {
	if f == nil {
		return domain.OrderFilter{}
	}
	filter := domain.OrderFilter{
		TotalMin:      decimalValue(f.TotalAmountGte),
		TotalMax:      decimalValue(f.TotalAmountLte),
		OrderedAfter:  timeValue(f.OrderDateGte),
		OrderedBefore: timeValue(f.OrderDateLte),
		CustomerName:  stringValue(f.CustomerName),
		ProductName:   stringValue(f.ProductName),
	}
	if f.ProductID != nil {
		filter.ProductID = string(*f.ProductID)
	}
	return filter
}

func (r *Resolver) Orders(ctx context.Context, args struct {
	OrderBy *[]string
	Filter  *orderFilterInput
}) ([]*orderResolver, error) {
	orders, err := r.svcs.Queries.ListOrders(ctx, args.Filter.toDomain(), sortArgs(args.OrderBy))
	if err != nil {
		return nil, r.clientError("orders", err)
	}
	out := make([]*orderResolver, 0, len(orders))
	for _, o := range orders {
		out = append(out, r.newOrderResolver(o))
	}
	return out, nil
}

func timeValue(t *graphqlgo.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}

func sortArgs(orderBy *[]string) []string {
	if orderBy == nil {
		return nil
	}
	return *orderBy
}
