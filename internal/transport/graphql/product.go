package graphql

import (
	"context"

	"github.com/cimillas/crm-graphql/internal/app"
	"github.com/cimillas/crm-graphql/internal/domain"
	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/shopspring/decimal"
)

type productResolver struct {
	p domain.Product
}

func (r *productResolver) ID() graphqlgo.ID {
	return graphqlgo.ID(r.p.ID)
}

func (r *productResolver) Name() string {
	return r.p.Name
}

func (r *productResolver) Price() float64 {
	return r.p.Price.InexactFloat64()
}

func (r *productResolver) Stock() int32 {
	return int32(r.p.Stock)
}

func (r *productResolver) CreatedAt() graphqlgo.Time {
	return graphqlgo.Time{Time: r.p.CreatedAt}
}

func newProductResolvers(products []domain.Product) []*productResolver {
	out := make([]*productResolver, 0, len(products))
	for _, p := range products {
		out = append(out, &productResolver{p: p})
	}
	return out
}

type createProductArgs struct {
	Name  string
	Price float64
	Stock *int32
}

type createProductPayload struct {
	product *productResolver
}

func (p *createProductPayload) Product() *productResolver {
	return p.product
}

func (r *Resolver) CreateProduct(ctx context.Context, args createProductArgs) (*createProductPayload, error) {
	in := app.CreateProductInput{
		Name:  args.Name,
		Price: decimal.NewFromFloat(args.Price),
	}
	if args.Stock != nil {
		stock := int(*args.Stock)
		in.Stock = &stock
	}

	product, err := r.svcs.Products.CreateProduct(ctx, in)
	if err != nil {
		return nil, r.mutationFailed("createProduct", err)
	}
	r.mutationSucceeded("createProduct")
	return &createProductPayload{product: &productResolver{p: product}}, nil
}

type productFilterInput struct {
	NameIcontains *string
	PriceGte      *float64
	PriceLte      *float64
	StockGte      *int32
	StockLte      *int32
}

func (f *productFilterInput) toDomain() domain.ProductFilter {
	if f == nil {
		return domain.ProductFilter{}
	}
	return domain.ProductFilter{
		NameContains: stringValue(f.NameIcontains),
		PriceMin:     decimalValue(f.PriceGte),
		PriceMax:     decimalValue(f.PriceLte),
		StockMin:     intValue(f.StockGte),
		StockMax:     intValue(f.StockLte),
	}
}

func (r *Resolver) Products(ctx context.Context, args struct {
	OrderBy *[]string
	Filter  *productFilterInput
}) ([]*productResolver, error) {
	products, err := r.svcs.Queries.ListProducts(ctx, args.Filter.toDomain(), sortArgs(args.OrderBy))
	if err != nil {
		return nil, r.clientError("products", err)
	}
	return newProductResolvers(products), nil
}

func decimalValue(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}

func intValue(i *int32) *int {
	if i == nil {
		return nil
	}
	v := int(*i)
	return &v
}
