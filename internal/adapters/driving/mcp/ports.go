package mcp

import (
	"github.com/custodia-labs/symptomlex/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server calls.
type Ports struct {
	// Catalogue reads the persisted lexicon.
	Catalogue driving.LexiconCatalogue

	// Builder resolves diseases live. Optional; without it the
	// resolve_symptoms tool reports that live lookups are unavailable.
	Builder driving.LexiconBuilder
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Catalogue == nil {
		return ErrMissingCatalogue
	}
	return nil
}
