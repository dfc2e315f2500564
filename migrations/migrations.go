// Package migrations содержит SQL-миграции, встраиваемые в бинарник.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
