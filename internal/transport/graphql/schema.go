package graphql

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/cimillas/crm-graphql/internal/app"
	"github.com/cimillas/crm-graphql/internal/domain"
	"github.com/cimillas/crm-graphql/internal/metrics"
	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"go.uber.org/zap"
)

//go:embed schema.graphql
var schemaSDL string

// CustomerCreator is the minimal interface needed for customer mutations.
type CustomerCreator interface {
	CreateCustomer(ctx context.Context, in app.CreateCustomerInput) (domain.Customer, error)
	BulkCreateCustomers(ctx context.Context, items []app.CreateCustomerInput) (app.BulkCreateResult, error)
}

// ProductCreator is the minimal interface needed for product mutations.
type ProductCreator interface {
	CreateProduct(ctx context.Context, in app.CreateProductInput) (domain.Product, error)
}

// OrderCreator is the minimal interface needed for order mutations.
type OrderCreator interface {
	CreateOrder(ctx context.Context, in app.CreateOrderInput) (domain.Order, error)
}

// Querier backs the list queries and the resolution of order references.
type Querier interface {
	ListCustomers(ctx context.Context, filter domain.CustomerFilter, orderBy []string) ([]domain.Customer, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter, orderBy []string) ([]domain.Product, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter, orderBy []string) ([]domain.Order, error)
	GetCustomer(ctx context.Context, customerID string) (domain.Customer, error)
	ProductsByIDs(ctx context.Context, productIDs []string) ([]domain.Product, error)
}

type Services struct {
	Customers CustomerCreator
	Products  ProductCreator
	Orders    OrderCreator
	Queries   Querier
}

type Options struct {
	Logger        *zap.Logger
	Metrics       *metrics.Recorder
	Introspection bool
	MaxDepth      int
}

// NewSchema parses the CRM schema and binds it to svcs.
func NewSchema(svcs Services, opts Options) (*graphqlgo.Schema, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	root := &Resolver{
		svcs:    svcs,
		logger:  logger,
		metrics: opts.Metrics,
	}

	schemaOpts := []graphqlgo.SchemaOpt{
		graphqlgo.Logger(panicLogger{logger: logger}),
	}
	if opts.MaxDepth > 0 {
		schemaOpts = append(schemaOpts, graphqlgo.MaxDepth(opts.MaxDepth))
	}
	if !opts.Introspection {
		schemaOpts = append(schemaOpts, graphqlgo.DisableIntrospection())
	}

	schema, err := graphqlgo.ParseSchema(schemaSDL, root, schemaOpts...)
	if err != nil {
		return nil, fmt.Errorf("parse graphql schema: %w", err)
	}
	return schema, nil
}

// Handler serves POST requests carrying {query, operationName, variables}.
func Handler(schema *graphqlgo.Schema) http.Handler {
	relayHandler := &relay.Handler{Schema: schema}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		relayHandler.ServeHTTP(w, r)
	})
}

type panicLogger struct {
	logger *zap.Logger
}

func (l panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.logger.Error("graphql resolver panic", zap.Any("panic", value), zap.Stack("stack"))
}
