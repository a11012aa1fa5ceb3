package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/leopoldovcfonseca/ptashelf/internal/adapters/postgres"
	"github.com/leopoldovcfonseca/ptashelf/internal/adapters/sqlite"
	"github.com/leopoldovcfonseca/ptashelf/internal/platform/config"
	"github.com/leopoldovcfonseca/ptashelf/migrations"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the storage schema",
		Long: `Applies the embedded schema migrations for the postgres and sqlite
backends. memory and mongodb need no schema and are left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := opts.cfg
			switch cfg.DataBackend {
			case config.BackendPostgres:
				pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, postgres.PoolOptions{MaxConns: cfg.Postgres.MaxConns})
				if err != nil {
					return err
				}
				defer pool.Close()
				if err := postgres.Migrate(ctx, pool, migrations.Postgres); err != nil {
					return err
				}
			case config.BackendSQLite:
				// Open applies pending migrations.
				db, err := sqlite.Open(ctx, cfg.SQLite.Path)
				if err != nil {
					return err
				}
				if err := db.Close(); err != nil {
					return err
				}
			default:
				log.Printf("backend %s has no schema to migrate", cfg.DataBackend)
				return nil
			}
			log.Printf("%s schema is up to date", cfg.DataBackend)
			return nil
		},
	}
}
