// Package migrations embeds the SQL migration files so the schema ships
// inside the binary and is applied idempotently at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
