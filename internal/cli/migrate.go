package cli

import (
	"fmt"

	"github.com/cimillas/crm-graphql/migrations"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := rt.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			applied, err := migrations.Apply(cmd.Context(), pool)
			if err != nil {
				return fmt.Errorf("apply migrations: %w", err)
			}
			rt.logger.Info("migrations applied", zap.Strings("applied", applied))
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", len(applied))
			return nil
		},
	}
}
