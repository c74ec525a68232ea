package cli

import (
	"fmt"

	"github.com/cimillas/crm-graphql/internal/app"
	"github.com/cimillas/crm-graphql/internal/clock"
	"github.com/cimillas/crm-graphql/internal/seed"
	"github.com/cimillas/crm-graphql/internal/storage/postgres"
	"github.com/cimillas/crm-graphql/migrations"
	"github.com/spf13/cobra"
)

func newSeedCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load demo customers and products",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := rt.connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			if _, err := migrations.Apply(ctx, pool); err != nil {
				return fmt.Errorf("apply migrations: %w", err)
			}

			clk := clock.NewSystem()
			seeder := seed.New(
				app.NewCustomerService(postgres.NewCustomerRepository(pool), clk),
				app.NewProductService(postgres.NewProductRepository(pool), clk),
				app.NewQueryService(postgres.NewQueryRepository(pool)),
				rt.logger,
			)
			res, err := seeder.Run(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"customers: %d created, %d skipped; products: %d created, %d skipped\n",
				res.CustomersCreated, res.CustomersSkipped, res.ProductsCreated, res.ProductsSkipped,
			)
			return nil
		},
	}
}
