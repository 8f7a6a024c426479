package driven

import (
	"context"

	"github.com/custodia-labs/symptomlex/internal/core/domain"
)

// NameHarvester enumerates disease names from a remote directory.
// Per-page failures are reported as outcomes, never returned as errors.
type NameHarvester interface {
	// Harvest returns every name found, unordered and possibly repeated,
	// together with one outcome per directory page.
	Harvest(ctx context.Context) ([]string, domain.StageReport)
}

// NameArchive reads and writes local archives of disease names.
type NameArchive interface {
	// Load returns the names stored at path. A missing or unreadable archive
	// yields no names and an outcome describing why.
	Load(ctx context.Context, path string) ([]string, domain.ItemOutcome)

	// Save writes names to path, replacing any existing archive.
	Save(ctx context.Context, path string, names []string) error
}
