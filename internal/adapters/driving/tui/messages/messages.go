// Package messages defines Bubbletea message types for the browser.
package messages

import (
	"github.com/custodia-labs/symptomlex/internal/core/domain"
)

// EntriesLoaded carries the persisted lexicon back to the model.
type EntriesLoaded struct {
	Entries []domain.SymptomEntry
	Err     error
}

// FilterChanged is sent when the filter text changes.
type FilterChanged struct {
	Text string
}
