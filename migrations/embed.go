package migrations

import "embed"

// FS holds the goose migrations applied on savings service start.
//
//go:embed *.sql
var FS embed.FS

const Dir = "."
