// Package jsonfile stores the lexicon as a single JSON object.
//
// Keys appear in record order. Writes go to a temporary file in the same
// directory which then replaces the target, so an interrupted save never
// leaves a truncated lexicon behind.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/custodia-labs/symptomlex/internal/core/domain"
	"github.com/custodia-labs/symptomlex/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.LexiconStore = (*Store)(nil)

// Store is a file-backed lexicon store.
type Store struct {
	path   string
	indent string
}

// NewStore creates a store writing to path. The file is not touched until
// the first Save or Load.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: output path is empty", domain.ErrInvalidInput)
	}
	return &Store{path: path, indent: "    "}, nil
}

// Path returns the output file path.
func (s *Store) Path() string {
	return s.path
}

// Save replaces the file's content with record.
func (s *Store) Save(_ context.Context, record *domain.SymptomRecord) error {
	if record == nil {
		record = domain.NewSymptomRecord()
	}

	compact, err := record.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encoding lexicon: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", s.indent); err != nil {
		return fmt.Errorf("encoding lexicon: %w", err)
	}
	buf.WriteByte('\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing lexicon: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing lexicon: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("setting lexicon permissions: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replacing lexicon: %w", err)
	}
	return nil
}

// Load reads the lexicon from the file.
// Returns domain.ErrNotFound if the file does not exist.
func (s *Store) Load(_ context.Context) (*domain.SymptomRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading lexicon: %w", err)
	}

	record := domain.NewSymptomRecord()
	if err := record.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("decoding lexicon %s: %w", s.path, err)
	}
	return record, nil
}

// Close is a no-op; the store holds no open resources.
func (s *Store) Close() error {
	return nil
}
