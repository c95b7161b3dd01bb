// Package migrations embeds the goose SQL migration files so the server
// binary can run them without shipping the files separately.
package migrations

import "embed"

// FS holds the embedded SQL migration files.
//
//go:embed *.sql
var FS embed.FS
