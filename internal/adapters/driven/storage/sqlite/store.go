package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/symptomlex/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/symptomlex/internal/core/domain"
	"github.com/custodia-labs/symptomlex/internal/core/ports/driven"
)

// Ensure Store implements the interfaces.
var (
	_ driven.LexiconStore = (*Store)(nil)
	_ driven.RunRecorder  = (*Store)(nil)
)

// Store is a SQLite-backed lexicon store.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// NewStore opens (or creates) the database at path and applies migrations.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: database path is empty", domain.ErrInvalidInput)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: path,
		now:  func() time.Time { return time.Now().UTC() },
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Save replaces the stored lexicon with record.
func (s *Store) Save(ctx context.Context, record *domain.SymptomRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, `DELETE FROM lexicon_entries`); err != nil {
		return fmt.Errorf("clearing lexicon: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO lexicon_entries (position, disease, symptoms) VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, entry := range record.Entries() {
		if _, err := stmt.ExecContext(ctx, i, entry.Disease, entry.Symptoms); err != nil {
			return fmt.Errorf("saving entry %q: %w", entry.Disease, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO lexicon_meta (id, saved_at) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET saved_at = excluded.saved_at
	`, s.now())
	if err != nil {
		return fmt.Errorf("marking lexicon saved: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing lexicon: %w", err)
	}
	return nil
}

// Load returns the stored lexicon in its saved order.
func (s *Store) Load(ctx context.Context) (*domain.SymptomRecord, error) {
	var savedAt sql.NullTime
	err := s.db.QueryRowContext(ctx, `SELECT saved_at FROM lexicon_meta WHERE id = 1`).Scan(&savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading lexicon metadata: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT disease, symptoms FROM lexicon_entries ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying lexicon: %w", err)
	}
	defer rows.Close()

	record := domain.NewSymptomRecord()
	for rows.Next() {
		var disease, symptoms string
		if err := rows.Scan(&disease, &symptoms); err != nil {
			return nil, fmt.Errorf("scanning lexicon entry: %w", err)
		}
		record.Add(disease, symptoms)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lexicon: %w", err)
	}
	return record, nil
}

// RecordRun stores a build summary. A run without an ID is given one.
func (s *Store) RecordRun(ctx context.Context, run domain.RunSummary) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, finished_at, harvested_names, archived_names,
			unique_names, resolved, kept, failures)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			started_at = excluded.started_at,
			finished_at = excluded.finished_at,
			harvested_names = excluded.harvested_names,
			archived_names = excluded.archived_names,
			unique_names = excluded.unique_names,
			resolved = excluded.resolved,
			kept = excluded.kept,
			failures = excluded.failures
	`, run.ID, run.StartedAt.UTC(), run.FinishedAt.UTC(), run.HarvestedNames, run.ArchivedNames,
		run.UniqueNames, run.Resolved, run.Kept, run.Failures)
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// ListRuns returns up to limit runs, most recent first. A limit of zero or
// less returns every run.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]domain.RunSummary, error) {
	query := `
		SELECT id, started_at, finished_at, harvested_names, archived_names,
			unique_names, resolved, kept, failures
		FROM runs ORDER BY started_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.RunSummary //nolint:prealloc // size unknown from query
	for rows.Next() {
		var run domain.RunSummary
		if err := rows.Scan(&run.ID, &run.StartedAt, &run.FinishedAt, &run.HarvestedNames,
			&run.ArchivedNames, &run.UniqueNames, &run.Resolved, &run.Kept, &run.Failures); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}
