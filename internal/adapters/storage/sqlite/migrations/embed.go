// Package migrations embeds the SQLite schema for the stage board.
package migrations

import "embed"

// FS contains the SQLite migrations.
//
//go:embed *.sql
var FS embed.FS
