package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/symptomlex/internal/core/domain"
	"github.com/custodia-labs/symptomlex/internal/core/ports/driven"
	"github.com/custodia-labs/symptomlex/internal/core/ports/driving"
)

// Ensure CatalogueService implements the interface.
var _ driving.LexiconCatalogue = (*CatalogueService)(nil)

// CatalogueService reads a lexicon previously written by a build.
// The store is opened per call so a rebuild is picked up immediately.
type CatalogueService struct {
	stores driven.LexiconStoreOpener
	path   string
}

// NewCatalogueService creates a catalogue over the lexicon stored at path.
func NewCatalogueService(stores driven.LexiconStoreOpener, path string) *CatalogueService {
	return &CatalogueService{stores: stores, path: path}
}

// Path returns the lexicon location being read.
func (s *CatalogueService) Path() string {
	return s.path
}

// List returns every entry in saved order.
func (s *CatalogueService) List(ctx context.Context) ([]domain.SymptomEntry, error) {
	record, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return record.Entries(), nil
}

// Get returns the entry for a disease.
func (s *CatalogueService) Get(ctx context.Context, disease string) (*domain.SymptomEntry, error) {
	record, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	symptoms, ok := record.Get(disease)
	if !ok {
		return nil, fmt.Errorf("disease %q: %w", disease, domain.ErrNotFound)
	}
	return &domain.SymptomEntry{Disease: disease, Symptoms: symptoms}, nil
}

// Search returns entries whose disease name or symptoms contain text.
func (s *CatalogueService) Search(ctx context.Context, text string, limit int) ([]domain.SymptomEntry, error) {
	record, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return FilterEntries(record.Entries(), text, limit), nil
}

// Runs returns recent builds if the store keeps a history.
func (s *CatalogueService) Runs(ctx context.Context, limit int) ([]domain.RunSummary, error) {
	store, err := s.stores.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon %s: %w", s.path, err)
	}
	defer store.Close()

	recorder, ok := store.(driven.RunRecorder)
	if !ok {
		return nil, nil
	}
	return recorder.ListRuns(ctx, limit)
}

func (s *CatalogueService) load(ctx context.Context) (*domain.SymptomRecord, error) {
	store, err := s.stores.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon %s: %w", s.path, err)
	}
	defer store.Close()

	record, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load lexicon %s: %w", s.path, err)
	}
	return record, nil
}

// FilterEntries keeps entries whose disease or symptoms contain text,
// ignoring case. An empty text keeps everything; limit <= 0 means no limit.
func FilterEntries(entries []domain.SymptomEntry, text string, limit int) []domain.SymptomEntry {
	needle := strings.ToLower(strings.TrimSpace(text))
	var out []domain.SymptomEntry
	for _, e := range entries {
		if limit > 0 && len(out) >= limit {
			break
		}
		if needle == "" ||
			strings.Contains(strings.ToLower(e.Disease), needle) ||
			strings.Contains(strings.ToLower(e.Symptoms), needle) {
			out = append(out, e)
		}
	}
	return out
}
