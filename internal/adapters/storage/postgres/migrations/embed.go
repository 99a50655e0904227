// Package migrations embeds the PostgreSQL schema for the stage board.
package migrations

import "embed"

// FS contains the PostgreSQL migrations.
//
//go:embed *.sql
var FS embed.FS
