// Package postgres contains Postgres-backed implementations of outbound ports.
//
// The embedded files in /migrations/postgres are the source of truth for the
// schema; Migrate applies them and the ptarepo adapter targets them. Adapters
// here are covered by the repository contract tests, which run only when
// PG_DSN is set.
package postgres
