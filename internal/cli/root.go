// Package cli assembles the crm-api command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cimillas/crm-graphql/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
)

const startupTimeout = 5 * time.Second

// runtime carries what PersistentPreRunE resolved for the subcommands.
type runtime struct {
	v      *viper.Viper
	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	rt := &runtime{v: viper.New()}

	cmd := &cobra.Command{
		Use:           "crm-api",
		Short:         "GraphQL API for customers, products and orders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if rt.logger != nil {
				_ = rt.logger.Sync()
			}
		},
	}
	config.RegisterFlags(cmd.PersistentFlags())

	serve := newServeCmd(rt)
	cmd.RunE = serve.RunE
	cmd.AddCommand(serve)
	cmd.AddCommand(newMigrateCmd(rt))
	cmd.AddCommand(newSeedCmd(rt))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func (rt *runtime) init(cmd *cobra.Command) error {
	bootstrap := zap.NewNop()
	if dir, err := os.Getwd(); err == nil {
		if _, err := config.LoadEnvFile(dir, bootstrap); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "WARN: %v\n", err)
		}
	}

	if err := config.Bind(rt.v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(rt.v)
	if err != nil {
		return err
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	rt.cfg = cfg
	rt.logger = logger
	return nil
}

// connect opens the pool and verifies the database answers.
func (rt *runtime) connect(ctx context.Context) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, rt.cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to db: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return pool, nil
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
