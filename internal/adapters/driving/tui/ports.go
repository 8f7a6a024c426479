// Package tui provides an interactive terminal browser for a persisted
// lexicon. It implements a driving adapter following hexagonal architecture
// principles.
package tui

import (
	"errors"

	"github.com/custodia-labs/symptomlex/internal/core/ports/driving"
)

var (
	// ErrInvalidPorts is returned for a nil Ports.
	ErrInvalidPorts = errors.New("tui: no ports supplied")

	// ErrMissingCatalogue is returned when Ports has no catalogue.
	ErrMissingCatalogue = errors.New("tui: lexicon catalogue is required")
)

// Ports aggregates the driving port interfaces required by the browser.
type Ports struct {
	// Catalogue reads the persisted lexicon.
	Catalogue driving.LexiconCatalogue
}

// NewPorts creates a new Ports aggregate.
func NewPorts(catalogue driving.LexiconCatalogue) *Ports {
	return &Ports{Catalogue: catalogue}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Catalogue == nil {
		return ErrMissingCatalogue
	}
	return nil
}
