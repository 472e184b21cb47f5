// Package migrations embeds the goose SQL migrations for each supported database.
package migrations

import "embed"

// Postgres holds the migrations applied to the PostgreSQL store
//
//go:embed postgres/*.sql
var Postgres embed.FS

// SQLite holds the migrations applied to the embedded SQLite store
//
//go:embed sqlite/*.sql
var SQLite embed.FS
