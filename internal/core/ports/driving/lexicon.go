package driving

import (
	"context"

	"github.com/custodia-labs/symptomlex/internal/core/domain"
)

// BuildOptions overrides configured paths for one build.
type BuildOptions struct {
	// ArchivePath replaces the configured archive location when set.
	ArchivePath string

	// OutputPath replaces the configured output location when set.
	OutputPath string
}

// LexiconBuilder runs the lexicon pipeline.
type LexiconBuilder interface {
	// Build harvests, loads, unifies, resolves, collapses and persists.
	// Only a failure to persist the result is returned as an error.
	Build(ctx context.Context, opts BuildOptions) (*domain.BuildResult, error)

	// Names harvests and loads names and returns their union.
	Names(ctx context.Context, opts BuildOptions) (domain.NameCollection, domain.BuildReport, error)

	// ExportNames writes names to an archive that a later build can load.
	ExportNames(ctx context.Context, path string, names domain.NameCollection) error

	// Lookup resolves symptoms for a single disease.
	Lookup(ctx context.Context, disease string) (domain.Resolution, error)
}

// LexiconCatalogue reads a persisted lexicon.
type LexiconCatalogue interface {
	// List returns every entry in saved order.
	List(ctx context.Context) ([]domain.SymptomEntry, error)

	// Get returns the entry for disease, or domain.ErrNotFound.
	Get(ctx context.Context, disease string) (*domain.SymptomEntry, error)

	// Search returns entries whose disease or symptoms contain text,
	// case-insensitively. A limit of zero or less means no limit.
	Search(ctx context.Context, text string, limit int) ([]domain.SymptomEntry, error)

	// Runs returns recent build summaries when the store keeps them.
	Runs(ctx context.Context, limit int) ([]domain.RunSummary, error)
}
