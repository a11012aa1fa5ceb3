package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leopoldovcfonseca/ptashelf/internal/adapters/postgres"
	"github.com/leopoldovcfonseca/ptashelf/migrations"
)

// OpenMigratedPool opens a Postgres pool against PG_DSN and applies repo migrations.
//
// It is destructive: it resets the public schema.
func OpenMigratedPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("PG_DSN")
	if dsn == "" {
		t.Skip("PG_DSN not set; skipping Postgres contract tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolOptions{})
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, `DROP SCHEMA IF EXISTS public CASCADE; CREATE SCHEMA public;`); err != nil {
		t.Fatalf("reset schema: %v", err)
	}
	if err := postgres.Migrate(ctx, pool, migrations.Postgres); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return pool
}

// TruncatePtas empties the ptas table and restarts its identity sequence.
func TruncatePtas(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(context.Background(), `TRUNCATE ptas RESTART IDENTITY`); err != nil {
		t.Fatalf("truncate ptas: %v", err)
	}
}
