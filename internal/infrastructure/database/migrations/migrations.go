// Package migrations embeds the SQL files applied by goose on startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
