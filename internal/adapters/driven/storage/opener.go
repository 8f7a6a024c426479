// Package storage picks the lexicon store that matches an output path.
package storage

import (
	"path/filepath"
	"strings"

	"github.com/custodia-labs/symptomlex/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/symptomlex/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/symptomlex/internal/core/ports/driven"
)

// Ensure Opener implements the interface.
var _ driven.LexiconStoreOpener = (*Opener)(nil)

// Backend names a store implementation.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

// BackendFor reports which store handles path.
// Paths ending in .db, .sqlite or .sqlite3 are SQLite databases; everything
// else is written as JSON.
func BackendFor(path string) Backend {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return BackendSQLite
	default:
		return BackendJSON
	}
}

// Opener opens the store matching an output path's extension.
type Opener struct{}

// NewOpener creates a new opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open returns the store for path.
func (o *Opener) Open(path string) (driven.LexiconStore, error) {
	if BackendFor(path) == BackendSQLite {
		store, err := sqlite.NewStore(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	store, err := jsonfile.NewStore(path)
	if err != nil {
		return nil, err
	}
	return store, nil
}
