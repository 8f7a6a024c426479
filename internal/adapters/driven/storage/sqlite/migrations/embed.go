// Package migrations carries the lexicon schema as numbered up/down SQL
// files applied in order by the sqlite store.
package migrations

import "embed"

// FS holds every *.sql file in this directory.
//
//go:embed *.sql
var FS embed.FS
