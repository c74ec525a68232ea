package migrations_test

import (
	"context"
	"testing"

	"github.com/cimillas/crm-graphql/internal/testutil"
	"github.com/cimillas/crm-graphql/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_RecordsMigrations(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `DROP TABLE IF EXISTS order_products, orders, products, customers, schema_migrations CASCADE`)
	require.NoError(t, err)

	applied, err := migrations.Apply(ctx, pool)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_customers_products.sql", "0002_orders.sql"}, applied)

	var count int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&count))
	assert.Equal(t, 2, count)

	applied, err = migrations.Apply(ctx, pool)
	require.NoError(t, err)
	assert.Empty(t, applied)

	var count2 int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&count2))
	assert.Equal(t, count, count2)
}
