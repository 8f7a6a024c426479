package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/symptomlex/internal/core/domain"
	"github.com/custodia-labs/symptomlex/internal/core/ports/driven"
)

// Ensure LexiconStore implements the interfaces.
var (
	_ driven.LexiconStore = (*LexiconStore)(nil)
	_ driven.RunRecorder  = (*LexiconStore)(nil)
)

// LexiconStore is an in-memory implementation of driven.LexiconStore that
// also records runs.
type LexiconStore struct {
	mu      sync.RWMutex
	entries []domain.SymptomEntry
	saved   bool
	runs    []domain.RunSummary
	saveErr error
	closed  bool
}

// NewLexiconStore creates a new, empty in-memory lexicon store.
func NewLexiconStore() *LexiconStore {
	return &LexiconStore{}
}

// FailSaves makes every following Save return err. Pass nil to restore.
func (s *LexiconStore) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// Save replaces the stored lexicon.
func (s *LexiconStore) Save(_ context.Context, record *domain.SymptomRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.entries = record.Entries()
	s.saved = true
	return nil
}

// Load returns a copy of the stored lexicon.
func (s *LexiconStore) Load(_ context.Context) (*domain.SymptomRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.saved {
		return nil, domain.ErrNotFound
	}
	return domain.SymptomRecordFromEntries(s.entries), nil
}

// Close marks the store closed. The data stays readable.
func (s *LexiconStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (s *LexiconStore) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// RecordRun stores a build summary.
func (s *LexiconStore) RecordRun(_ context.Context, run domain.RunSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	s.runs = append(s.runs, run)
	return nil
}

// ListRuns returns recorded runs, most recent first.
func (s *LexiconStore) ListRuns(_ context.Context, limit int) ([]domain.RunSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	runs := slices.Clone(s.runs)
	slices.Reverse(runs)
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// Opener hands out in-memory stores keyed by path, so a store saved by one
// caller can be loaded by the next.
type Opener struct {
	mu      sync.Mutex
	stores  map[string]*LexiconStore
	openErr error
}

// Ensure Opener implements the interface.
var _ driven.LexiconStoreOpener = (*Opener)(nil)

// NewOpener creates an opener with no stores.
func NewOpener() *Opener {
	return &Opener{stores: make(map[string]*LexiconStore)}
}

// FailOpens makes every following Open return err. Pass nil to restore.
func (o *Opener) FailOpens(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.openErr = err
}

// Open returns the store for path, creating it on first use.
func (o *Opener) Open(path string) (driven.LexiconStore, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.openErr != nil {
		return nil, o.openErr
	}
	return o.store(path), nil
}

// Store returns the store for path, creating it on first use.
func (o *Opener) Store(path string) *LexiconStore {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.store(path)
}

func (o *Opener) store(path string) *LexiconStore {
	s, ok := o.stores[path]
	if !ok {
		s = NewLexiconStore()
		o.stores[path] = s
	}
	return s
}
