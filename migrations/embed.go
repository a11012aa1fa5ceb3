// Package migrations embeds the SQL schema for the relational pta backends.
package migrations

import "embed"

// Postgres holds postgres/*.up.sql, applied in lexical order.
//
//go:embed postgres/*.up.sql
var Postgres embed.FS

// SQLite holds sqlite/*.sql, applied in lexical order.
//
//go:embed sqlite/*.sql
var SQLite embed.FS
