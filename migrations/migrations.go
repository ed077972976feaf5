// Package migrations embeds the goose SQL migrations so the server binary
// can bring a fresh database up to date at startup.
package migrations

import "embed"

//go:embed goose_sql/*.sql
var FS embed.FS
