package driven

import (
	"context"

	"github.com/custodia-labs/symptomlex/internal/core/domain"
)

// SearchProvider runs full-text web searches.
type SearchProvider interface {
	// Search returns up to limit ranked hits for query.
	Search(ctx context.Context, query string, limit int) ([]domain.SearchHit, error)
}

// Encyclopedia fetches pages of the target encyclopedia.
type Encyclopedia interface {
	// Accepts reports whether address belongs to the encyclopedia.
	Accepts(address string) bool

	// FetchPage returns the raw HTML of the page at address.
	// Non-2xx answers are reported with domain.ErrUnexpectedStatus.
	FetchPage(ctx context.Context, address string) ([]byte, error)
}

// SymptomExtractor pulls a symptom description out of an encyclopedia page.
type SymptomExtractor interface {
	// ExtractSymptoms returns the cleaned symptom text and true when the page
	// carries one. A page without it is not an error.
	ExtractSymptoms(page []byte) (string, bool, error)
}

// Pacer spaces out outgoing requests.
type Pacer interface {
	// Wait blocks until the next request may be sent.
	Wait(ctx context.Context) error
}
