package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	memptarepo "github.com/leopoldovcfonseca/ptashelf/internal/adapters/memory/ptarepo"
	"github.com/leopoldovcfonseca/ptashelf/internal/adapters/mongodb"
	mongoptarepo "github.com/leopoldovcfonseca/ptashelf/internal/adapters/mongodb/ptarepo"
	"github.com/leopoldovcfonseca/ptashelf/internal/adapters/postgres"
	pgptarepo "github.com/leopoldovcfonseca/ptashelf/internal/adapters/postgres/ptarepo"
	"github.com/leopoldovcfonseca/ptashelf/internal/adapters/sqlite"
	sqliteptarepo "github.com/leopoldovcfonseca/ptashelf/internal/adapters/sqlite/ptarepo"
	"github.com/leopoldovcfonseca/ptashelf/internal/platform/config"
	"github.com/leopoldovcfonseca/ptashelf/internal/ports/out/ptarepo"
)

// Backend is the storage handle for one process: the repository plus the
// resources behind it.
type Backend struct {
	Repo  ptarepo.Repository
	close func() error
}

// Close releases the underlying connection. Safe to call on a nil Backend.
func (b *Backend) Close() error {
	if b == nil || b.close == nil {
		return nil
	}
	return b.close()
}

// OpenBackend connects to the storage selected by cfg.DataBackend.
func OpenBackend(ctx context.Context, cfg config.Config) (*Backend, error) {
	switch cfg.DataBackend {
	case config.BackendMemory:
		log.Printf("using in-memory storage; data is lost on exit")
		return &Backend{Repo: memptarepo.NewRepo()}, nil

	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, postgres.PoolOptions{MaxConns: cfg.Postgres.MaxConns})
		if err != nil {
			return nil, err
		}
		return &Backend{
			Repo:  pgptarepo.NewRepo(pool),
			close: closePool(pool),
		}, nil

	case config.BackendSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Repo:  sqliteptarepo.NewRepo(db),
			close: db.Close,
		}, nil

	case config.BackendMongoDB:
		client, err := mongodb.Connect(ctx, cfg.Mongo.URI)
		if err != nil {
			return nil, err
		}
		coll := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
		return &Backend{
			Repo:  mongoptarepo.NewRepo(coll),
			close: func() error { return mongodb.Disconnect(client) },
		}, nil

	default:
		return nil, fmt.Errorf("unknown DATA_BACKEND %q", cfg.DataBackend)
	}
}

func closePool(pool *pgxpool.Pool) func() error {
	return func() error {
		pool.Close()
		return nil
	}
}

