// Package migrations embeds the staging schema applied by goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
