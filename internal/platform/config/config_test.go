package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATA_BACKEND", "PG_DSN", "SQLITE_PATH", "MONGO_URI"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port=%q want=8080", cfg.Port)
	}
	if cfg.DataBackend != BackendMemory {
		t.Fatalf("DataBackend=%q want=%q", cfg.DataBackend, BackendMemory)
	}
	if cfg.Mongo.Collection != "ptas" {
		t.Fatalf("Mongo.Collection=%q want=ptas", cfg.Mongo.Collection)
	}
}

func TestLoad_NormalizesBackendName(t *testing.T) {
	t.Setenv("DATA_BACKEND", " SQLite ")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataBackend != BackendSQLite || cfg.SQLite.Path != "/tmp/x.db" {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoad_PostgresRequiresDSN(t *testing.T) {
	t.Setenv("DATA_BACKEND", "postgres")
	t.Setenv("PG_DSN", "")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "PG_DSN") {
		t.Fatalf("err=%v want PG_DSN error", err)
	}
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("DATA_BACKEND", "datastore")

	if _, err := Load(); err == nil {
		t.Fatal("expected unknown backend error")
	}
}

func TestLoad_RejectsBadMaxConns(t *testing.T) {
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("PG_MAX_CONNS", "many")

	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("PTASHELF_DOTENV_PROBE=from-file\nPORT=9999\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("PORT", "7000")
	t.Setenv("PTASHELF_DOTENV_PROBE", "")
	os.Unsetenv("PTASHELF_DOTENV_PROBE")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("PTASHELF_DOTENV_PROBE"); got != "from-file" {
		t.Fatalf("probe=%q want=from-file", got)
	}
	if got := os.Getenv("PORT"); got != "7000" {
		t.Fatalf("PORT=%q want existing value 7000", got)
	}
}
