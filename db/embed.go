// Package db embeds the SQL migration files so the binary can apply its own
// schema at startup.
package db

import "embed"

//go:embed migrations/*.sql
var MigrationsFS embed.FS
