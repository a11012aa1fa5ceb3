// Package sqlite contains SQLite-backed implementations of outbound ports,
// using the pure-Go modernc.org/sqlite driver. Open applies the embedded
// migrations in /migrations/sqlite before returning a handle.
package sqlite
