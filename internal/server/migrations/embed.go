// Package migrations embeds the server's database schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
