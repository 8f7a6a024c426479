package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/symptomlex/internal/core/domain"
	"github.com/custodia-labs/symptomlex/internal/core/ports/driven"
	"github.com/custodia-labs/symptomlex/internal/logger"
)

// SymptomResolver looks up a symptom description for each disease by
// searching the web and reading the first encyclopedia infobox that has one.
type SymptomResolver struct {
	search    driven.SearchProvider
	pages     driven.Encyclopedia
	extractor driven.SymptomExtractor
	pacer     driven.Pacer
	cfg       domain.SearchConfig
}

// NewSymptomResolver creates a resolver. The pacer is waited on before
// every search query.
func NewSymptomResolver(
	search driven.SearchProvider,
	pages driven.Encyclopedia,
	extractor driven.SymptomExtractor,
	pacer driven.Pacer,
	cfg domain.SearchConfig,
) *SymptomResolver {
	return &SymptomResolver{
		search:    search,
		pages:     pages,
		extractor: extractor,
		pacer:     pacer,
		cfg:       cfg,
	}
}

// Resolve resolves every name in order. Names without symptoms are absent
// from the returned record; failures are reported, never returned.
func (r *SymptomResolver) Resolve(
	ctx context.Context,
	names domain.NameCollection,
) (*domain.SymptomRecord, domain.StageReport) {
	record := domain.NewSymptomRecord()
	report := domain.StageReport{Stage: domain.StageResolve}

	for i := 0; i < names.Len(); i++ {
		res := r.ResolveOne(ctx, names.At(i))
		if res.Found {
			record.Add(res.Disease, res.Symptoms)
		}
		report.Add(res.Outcome)
		logger.Debug("[%d/%d] %s: %s", i+1, names.Len(), res.Disease, res.Outcome.Status)
	}

	return record, report
}

// ResolveOne resolves a single disease.
//
// Candidate pages are tried in search rank order and the first one that
// yields symptom text wins (domain.ResolutionPolicyFirstMatch). A search or
// transport failure abandons the disease; a candidate answering with a
// non-2xx status or unparseable markup only counts as having no data. An
// empty policy means first match; any other policy fails the disease before
// searching.
func (r *SymptomResolver) ResolveOne(ctx context.Context, disease string) domain.Resolution {
	res := domain.Resolution{Disease: disease}

	fail := func(err error) domain.Resolution {
		logger.Error("Error fetching symptoms for %s: %v", disease, err)
		res.Outcome = domain.Failed(disease, err)
		return res
	}

	switch r.cfg.Policy {
	case "", domain.ResolutionPolicyFirstMatch:
	default:
		return fail(fmt.Errorf("%w: unknown resolution policy %q", domain.ErrInvalidConfig, r.cfg.Policy))
	}

	if r.pacer != nil {
		if err := r.pacer.Wait(ctx); err != nil {
			return fail(fmt.Errorf("waiting for search pacing: %w", err))
		}
	}

	hits, err := r.search.Search(ctx, r.cfg.Query(disease), r.cfg.ResultLimit)
	if err != nil {
		return fail(fmt.Errorf("search: %w", err))
	}
	if len(hits) == 0 {
		res.Outcome = domain.Skipped(disease, domain.ErrNoSearchResults.Error())
		return res
	}

	for _, hit := range hits {
		if !r.pages.Accepts(hit.URL) {
			continue
		}

		res.CandidatesScanned++
		page, err := r.pages.FetchPage(ctx, hit.URL)
		if errors.Is(err, domain.ErrUnexpectedStatus) {
			logger.Debug("No page for %s at %s: %v", disease, hit.URL, err)
			continue
		}
		if err != nil {
			return fail(fmt.Errorf("fetch %s: %w", hit.URL, err))
		}

		symptoms, ok, err := r.extractor.ExtractSymptoms(page)
		if err != nil {
			logger.Debug("Unreadable page for %s at %s: %v", disease, hit.URL, err)
			continue
		}
		if !ok {
			continue
		}

		res.Found = true
		res.Symptoms = symptoms
		res.Source = hit.URL
		res.Outcome = domain.Succeeded(disease, 1, hit.URL)
		return res
	}

	res.Outcome = domain.Skipped(disease, "no symptoms found")
	return res
}
