package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/symptomlex/internal/core/domain"
	"github.com/custodia-labs/symptomlex/internal/core/ports/driven"
	"github.com/custodia-labs/symptomlex/internal/core/ports/driving"
	"github.com/custodia-labs/symptomlex/internal/logger"
)

// Ensure LexiconService implements the interface.
var _ driving.LexiconBuilder = (*LexiconService)(nil)

// Resolver turns disease names into symptom text.
// SymptomResolver is the production implementation.
type Resolver interface {
	Resolve(ctx context.Context, names domain.NameCollection) (*domain.SymptomRecord, domain.StageReport)
	ResolveOne(ctx context.Context, disease string) domain.Resolution
}

// LexiconService runs the lexicon pipeline end to end:
// harvest and archive load, unify, resolve, collapse, persist.
type LexiconService struct {
	harvester driven.NameHarvester
	archive   driven.NameArchive
	resolver  Resolver
	stores    driven.LexiconStoreOpener
	paths     domain.PathsConfig
	now       func() time.Time
}

// NewLexiconService creates a new lexicon service.
func NewLexiconService(
	harvester driven.NameHarvester,
	archive driven.NameArchive,
	resolver Resolver,
	stores driven.LexiconStoreOpener,
	paths domain.PathsConfig,
) *LexiconService {
	return &LexiconService{
		harvester: harvester,
		archive:   archive,
		resolver:  resolver,
		stores:    stores,
		paths:     paths,
		now:       time.Now,
	}
}

// Build runs every stage in order and persists the result once, at the end.
// Per-item problems are reported in the result; only a failure to persist
// is returned as an error, together with the unsaved result.
func (s *LexiconService) Build(ctx context.Context, opts driving.BuildOptions) (*domain.BuildResult, error) {
	started := s.now()
	archivePath, outputPath := s.resolvePaths(opts)

	harvested, archived, names, report := s.collect(ctx, archivePath)
	logger.Notice("Total unique diseases: %d", names.Len())

	logger.Section("Resolve")
	resolved, resolveReport := s.resolver.Resolve(ctx, names)
	report.Resolve = resolveReport

	logger.Section("Collapse")
	lexicon, collapseReport := CollapseDuplicates(resolved)
	report.Collapse = collapseReport
	logger.Notice("Diseases with unique symptoms: %d", lexicon.Len())

	result := &domain.BuildResult{
		Names:    names,
		Resolved: resolved,
		Lexicon:  lexicon,
		Report:   report,
		Summary: domain.RunSummary{
			StartedAt:      started,
			HarvestedNames: harvested,
			ArchivedNames:  archived,
			UniqueNames:    names.Len(),
			Resolved:       resolved.Len(),
			Kept:           lexicon.Len(),
			Failures:       countFailures(report),
		},
	}

	logger.Section("Persist")
	store, err := s.stores.Open(outputPath)
	if err != nil {
		return result, fmt.Errorf("open output %s: %w", outputPath, err)
	}
	defer store.Close()

	if err := store.Save(ctx, lexicon); err != nil {
		return result, fmt.Errorf("save lexicon to %s: %w", outputPath, err)
	}
	logger.Info("Saved %d entries to %s", lexicon.Len(), outputPath)

	result.Summary.FinishedAt = s.now()
	if recorder, ok := store.(driven.RunRecorder); ok {
		if err := recorder.RecordRun(ctx, result.Summary); err != nil {
			// The lexicon itself is saved; history is best effort.
			logger.Warn("Recording run history failed: %v", err)
		}
	}

	return result, nil
}

// Names runs the harvest and archive stages and returns their union.
func (s *LexiconService) Names(
	ctx context.Context,
	opts driving.BuildOptions,
) (domain.NameCollection, domain.BuildReport, error) {
	archivePath, _ := s.resolvePaths(opts)
	_, _, names, report := s.collect(ctx, archivePath)
	return names, report, nil
}

// ExportNames writes names to an archive at path.
func (s *LexiconService) ExportNames(ctx context.Context, path string, names domain.NameCollection) error {
	if path == "" {
		return fmt.Errorf("%w: export path is empty", domain.ErrInvalidInput)
	}
	if err := s.archive.Save(ctx, path, names.Names()); err != nil {
		return fmt.Errorf("export names to %s: %w", path, err)
	}
	return nil
}

// Lookup resolves symptoms for one disease without touching the archive or output.
func (s *LexiconService) Lookup(ctx context.Context, disease string) (domain.Resolution, error) {
	name, ok := domain.CleanName(disease)
	if !ok {
		return domain.Resolution{}, fmt.Errorf("%w: disease name is empty", domain.ErrInvalidInput)
	}
	return s.resolver.ResolveOne(ctx, name), nil
}

// collect harvests the directory, loads the archive and unifies the two.
func (s *LexiconService) collect(
	ctx context.Context,
	archivePath string,
) (harvested, archived int, names domain.NameCollection, report domain.BuildReport) {
	logger.Section("Harvest")
	fromWeb, harvestReport := s.harvester.Harvest(ctx)
	report.Harvest = harvestReport
	logger.Info("Harvested %d names from %d pages", len(fromWeb), len(harvestReport.Outcomes))

	logger.Section("Archive")
	fromArchive, outcome := s.archive.Load(ctx, archivePath)
	report.Archive = domain.StageReport{Stage: domain.StageArchive, Outcomes: []domain.ItemOutcome{outcome}}
	logger.Info("Loaded %d names from %s", len(fromArchive), archivePath)

	names = UnifyNames(fromWeb, fromArchive)
	return len(fromWeb), len(fromArchive), names, report
}

func (s *LexiconService) resolvePaths(opts driving.BuildOptions) (archive, output string) {
	archive, output = s.paths.Archive, s.paths.Output
	if opts.ArchivePath != "" {
		archive = opts.ArchivePath
	}
	if opts.OutputPath != "" {
		output = opts.OutputPath
	}
	return archive, output
}

func countFailures(report domain.BuildReport) int {
	n := 0
	for _, stage := range report.Stages() {
		n += stage.Count(domain.OutcomeFailed)
	}
	return n
}
