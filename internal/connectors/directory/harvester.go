// Package directory harvests disease names from an alphabetical health
// portal directory: one page per letter, each listing names as list items
// inside a container element.
package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/symptomlex/internal/connectors/web"
	"github.com/custodia-labs/symptomlex/internal/core/domain"
	"github.com/custodia-labs/symptomlex/internal/core/ports/driven"
	"github.com/custodia-labs/symptomlex/internal/logger"
)

// Ensure Harvester implements the interface.
var _ driven.NameHarvester = (*Harvester)(nil)

// Fetcher retrieves a page body.
type Fetcher interface {
	Get(ctx context.Context, address string) ([]byte, error)
}

// Harvester walks the directory letter by letter.
type Harvester struct {
	fetcher Fetcher
	pacer   driven.Pacer
	cfg     domain.DirectoryConfig
}

// NewHarvester creates a harvester. The pacer is waited on before every page request.
func NewHarvester(fetcher Fetcher, pacer driven.Pacer, cfg domain.DirectoryConfig) *Harvester {
	return &Harvester{
		fetcher: fetcher,
		pacer:   pacer,
		cfg:     cfg,
	}
}

// Harvest visits every letter page and collects the listed names.
// A page that cannot be fetched or parsed is reported and skipped.
func (h *Harvester) Harvest(ctx context.Context) ([]string, domain.StageReport) {
	report := domain.StageReport{Stage: domain.StageHarvest}
	var names []string

	for _, letter := range strings.Split(h.cfg.Alphabet, "") {
		pageNames, outcome := h.harvestLetter(ctx, letter)
		if outcome.Status == domain.OutcomeFailed {
			logger.Error("Error fetching diseases for letter '%s': %v", letter, outcome.Err)
		}
		names = append(names, pageNames...)
		report.Add(outcome)
	}

	return names, report
}

// PageURL returns the directory address for a letter.
func (h *Harvester) PageURL(letter string) string {
	return h.cfg.BaseURL + letter
}

func (h *Harvester) harvestLetter(ctx context.Context, letter string) ([]string, domain.ItemOutcome) {
	if h.pacer != nil {
		if err := h.pacer.Wait(ctx); err != nil {
			return nil, domain.Failed(letter, fmt.Errorf("waiting for pacing: %w", err))
		}
	}

	address := h.PageURL(letter)
	logger.Debug("Fetching %s", address)

	page, err := h.fetcher.Get(ctx, address)
	if err != nil {
		return nil, domain.Failed(letter, err)
	}

	names, found, err := ParseListing(page, h.cfg.ContainerClass)
	if err != nil {
		return nil, domain.Failed(letter, err)
	}
	if !found {
		logger.Debug("No listing on %s", address)
		return nil, domain.Skipped(letter, "listing container not found")
	}

	return names, domain.Succeeded(letter, len(names), address)
}

// ParseListing extracts the text of every list item inside the first div
// carrying containerClass. It reports false when no such div exists.
func ParseListing(page []byte, containerClass string) ([]string, bool, error) {
	doc, err := web.Parse(page)
	if err != nil {
		return nil, false, err
	}

	container := web.Find(doc, web.ElementWithClass("div", containerClass))
	if container == nil {
		return nil, false, nil
	}

	var names []string
	for _, li := range web.FindAll(container, web.Element("li")) {
		if name, ok := domain.CleanName(web.Text(li, "")); ok {
			names = append(names, name)
		}
	}
	return names, true, nil
}
