// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Supported DATA_BACKEND values.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMongoDB  = "mongodb"
)

// Config is the ptashelf process configuration.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DataBackend string `env:"DATA_BACKEND" envDefault:"memory"`

	Postgres PostgresConfig
	SQLite   SQLiteConfig
	Mongo    MongoConfig
}

type PostgresConfig struct {
	DSN      string `env:"PG_DSN"`
	MaxConns int32  `env:"PG_MAX_CONNS" envDefault:"0"`
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH" envDefault:"ptashelf.db"`
}

type MongoConfig struct {
	URI        string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	Database   string `env:"MONGO_DATABASE" envDefault:"ptashelf"`
	Collection string `env:"MONGO_COLLECTION" envDefault:"ptas"`
}

// LoadDotEnv loads variables from the given files (default ".env") without
// overriding variables already set. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load parses Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.DataBackend = strings.ToLower(strings.TrimSpace(cfg.DataBackend))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.DataBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("PG_DSN is required when DATA_BACKEND=%s", BackendPostgres)
		}
	case BackendSQLite:
		if strings.TrimSpace(c.SQLite.Path) == "" {
			return fmt.Errorf("SQLITE_PATH is required when DATA_BACKEND=%s", BackendSQLite)
		}
	case BackendMongoDB:
		if c.Mongo.URI == "" || c.Mongo.Database == "" || c.Mongo.Collection == "" {
			return fmt.Errorf("MONGO_URI, MONGO_DATABASE and MONGO_COLLECTION are required when DATA_BACKEND=%s", BackendMongoDB)
		}
	default:
		return fmt.Errorf("unknown DATA_BACKEND %q (want memory, postgres, sqlite or mongodb)", c.DataBackend)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	return nil
}
