package domain

// SearchHit is a single ranked result returned by the search provider.
type SearchHit struct {
	// Rank is the 1-based position in the result list.
	Rank int

	// Title is the result title as shown by the provider.
	Title string

	// URL is the result address.
	URL string
}

// Resolution is the result of looking up symptoms for one disease.
type Resolution struct {
	// Disease is the name that was resolved.
	Disease string

	// Symptoms is the cleaned symptom text. Empty when Found is false.
	Symptoms string

	// Source is the page the symptoms were taken from.
	Source string

	// Found reports whether any candidate page yielded symptoms.
	Found bool

	// CandidatesScanned counts encyclopedia pages fetched for this disease.
	CandidatesScanned int

	// Outcome is the per-item result recorded in the resolve report.
	Outcome ItemOutcome
}
