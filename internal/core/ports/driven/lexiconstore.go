package driven

import (
	"context"

	"github.com/custodia-labs/symptomlex/internal/core/domain"
)

// LexiconStore persists the final disease to symptom mapping.
type LexiconStore interface {
	// Save replaces the stored lexicon with record.
	Save(ctx context.Context, record *domain.SymptomRecord) error

	// Load returns the stored lexicon in its saved order.
	// Returns domain.ErrNotFound if nothing has been saved yet.
	Load(ctx context.Context) (*domain.SymptomRecord, error)

	// Close releases resources.
	Close() error
}

// RunRecorder is implemented by stores that keep a history of builds.
type RunRecorder interface {
	// RecordRun stores a build summary.
	RecordRun(ctx context.Context, run domain.RunSummary) error

	// ListRuns returns the most recent runs first.
	ListRuns(ctx context.Context, limit int) ([]domain.RunSummary, error)
}

// LexiconStoreOpener opens the store that backs a given output location.
type LexiconStoreOpener interface {
	Open(path string) (LexiconStore, error)
}
