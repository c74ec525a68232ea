package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cimillas/crm-graphql/internal/app"
	"github.com/cimillas/crm-graphql/internal/clock"
	"github.com/cimillas/crm-graphql/internal/config"
	"github.com/cimillas/crm-graphql/internal/metrics"
	"github.com/cimillas/crm-graphql/internal/storage/postgres"
	"github.com/cimillas/crm-graphql/internal/transport/graphql"
	transporthttp "github.com/cimillas/crm-graphql/internal/transport/http"
	"github.com/cimillas/crm-graphql/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the GraphQL HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.serve(cmd.Context())
		},
	}
}

func (rt *runtime) serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := rt.logger

	pool, err := rt.connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	applied, err := migrations.Apply(ctx, pool)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	if len(applied) > 0 {
		logger.Info("migrations applied", zap.Strings("applied", applied))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	handler, err := newHandler(rt.cfg, handlerDeps{
		services: newServices(pool),
		db:       pool,
		registry: reg,
		logger:   logger,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              ":" + rt.cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("api listening", zap.String("addr", server.Addr))

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var runErr error
	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("server error: %w", err)
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
	return runErr
}

func newServices(pool *pgxpool.Pool) graphql.Services {
	clk := clock.NewSystem()
	return graphql.Services{
		Customers: app.NewCustomerService(postgres.NewCustomerRepository(pool), clk),
		Products:  app.NewProductService(postgres.NewProductRepository(pool), clk),
		Orders:    app.NewOrderService(postgres.NewOrderRepository(pool), clk),
		Queries:   app.NewQueryService(postgres.NewQueryRepository(pool)),
	}
}

type handlerDeps struct {
	services graphql.Services
	db       transporthttp.Pinger
	registry *prometheus.Registry
	logger   *zap.Logger
}

// newHandler builds the routed, logged and CORS-wrapped HTTP handler.
func newHandler(cfg config.Config, deps handlerDeps) (http.Handler, error) {
	schema, err := graphql.NewSchema(deps.services, graphql.Options{
		Logger:        deps.logger,
		Metrics:       metrics.New(deps.registry),
		Introspection: cfg.GraphQLIntrospection,
		MaxDepth:      cfg.GraphQLMaxDepth,
	})
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/graphql", graphql.Handler(schema))
	mux.Handle("/health", transporthttp.HealthHandler(deps.db))
	mux.Handle("/metrics", metrics.Handler(deps.registry))
	mux.Handle("/", transporthttp.NotFoundHandler())

	return transporthttp.RequestLogger(transporthttp.CORS(cfg.CORSOrigins, mux), deps.logger), nil
}
