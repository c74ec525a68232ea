package graphql

import (
	"context"

	"github.com/cimillas/crm-graphql/internal/app"
	"github.com/cimillas/crm-graphql/internal/domain"
	graphqlgo "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
)

type customerResolver struct {
	c domain.Customer
}

func (r *customerResolver) ID() graphqlgo.ID {
	return graphqlgo.ID(r.c.ID)
}

func (r *customerResolver) Name() string {
	return r.c.Name
}

func (r *customerResolver) Email() string {
	return r.c.Email
}

func (r *customerResolver) Phone() *string {
	if r.c.Phone == "" {
		return nil
	}
	phone := r.c.Phone
	return &phone
}

func (r *customerResolver) CreatedAt() graphqlgo.Time {
	return graphqlgo.Time{Time: r.c.CreatedAt}
}

func newCustomerResolvers(customers []domain.Customer) []*customerResolver {
	out := make([]*customerResolver, 0, len(customers))
	for _, c := range customers {
		out = append(out, &customerResolver{c: c})
	}
	return out
}

type createCustomerArgs struct {
	Name  string
	Email string
	Phone *string
}

type createCustomerPayload struct {
	customer *customerResolver
	message  string
}

func (p *createCustomerPayload) Customer() *customerResolver {
	return p.customer
}

func (p *createCustomerPayload) Message() string {
	return p.message
}

func (r *Resolver) CreateCustomer(ctx context.Context, args createCustomerArgs) (*createCustomerPayload, error) {
	customer, err := r.svcs.Customers.CreateCustomer(ctx, app.CreateCustomerInput{
		Name:  args.Name,
		Email: args.Email,
		Phone: stringValue(args.Phone),
	})
	if err != nil {
		return nil, r.mutationFailed("createCustomer", err)
	}
	r.mutationSucceeded("createCustomer")
	return &createCustomerPayload{
		customer: &customerResolver{c: customer},
		message:  app.CustomerCreatedMessage,
	}, nil
}

type customerInput struct {
	Name  *string
	Email *string
	Phone *string
}

type bulkCreateCustomersPayload struct {
	customers []*customerResolver
	errors    []string
}

func (p *bulkCreateCustomersPayload) Customers() []*customerResolver {
	return p.customers
}

func (p *bulkCreateCustomersPayload) Errors() []string {
	return p.errors
}

func (r *Resolver) BulkCreateCustomers(ctx context.Context, args struct{ Customers []customerInput }) (*bulkCreateCustomersPayload, error) {
	items := make([]app.CreateCustomerInput, 0, len(args.Customers))
	for _, in := range args.Customers {
		items = append(items, app.CreateCustomerInput{
			Name:  stringValue(in.Name),
			Email: stringValue(in.Email),
			Phone: stringValue(in.Phone),
		})
	}

	res, err := r.svcs.Customers.BulkCreateCustomers(ctx, items)
	r.metrics.BulkItems(len(res.Created), len(res.Errors))
	if err != nil {
		return nil, r.mutationFailed("bulkCreateCustomers", err)
	}
	r.mutationSucceeded("bulkCreateCustomers")

	errs := make([]string, 0, len(res.Errors))
	for _, itemErr := range res.Errors {
		if _, known := errorCode(itemErr.Err); !known {
			r.logger.Error("bulk customer item failed",
				zap.Int("index", itemErr.Index),
				zap.String("email", itemErr.Email),
				zap.Error(itemErr.Err),
			)
		}
		errs = append(errs, itemErr.Error())
	}
	return &bulkCreateCustomersPayload{
		customers: newCustomerResolvers(res.Created),
		errors:    errs,
	}, nil
}

type customerFilterInput struct {
	NameIcontains  *string
	EmailIcontains *string
	CreatedAtGte   *graphqlgo.Time
	CreatedAtLte   *graphqlgo.Time
	PhonePattern   *string
}

func (f *customerFilterInput) toDomain() domain.CustomerFilter {
	if f == nil {
		return domain.CustomerFilter{}
	}
	return domain.CustomerFilter{
		NameContains:  stringValue(f.NameIcontains),
		EmailContains: stringValue(f.EmailIcontains),
		CreatedAfter:  timeValue(f.CreatedAtGte),
		CreatedBefore: timeValue(f.CreatedAtLte),
		PhonePrefix:   stringValue(f.PhonePattern),
	}
}

func (r *Resolver) Customers(ctx context.Context, args struct {
	OrderBy *[]string
	Filter  *customerFilterInput
}) ([]*customerResolver, error) {
	customers, err := r.svcs.Queries.ListCustomers(ctx, args.Filter.toDomain(), sortArgs(args.OrderBy))
	if err != nil {
		return nil, r.clientError("customers", err)
	}
	return newCustomerResolvers(customers), nil
}
