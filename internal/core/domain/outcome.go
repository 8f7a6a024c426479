package domain

import "time"

// OutcomeStatus classifies how a single item fared in a stage.
type OutcomeStatus string

// Outcome statuses.
const (
	// OutcomeSucceeded means the item produced data.
	OutcomeSucceeded OutcomeStatus = "succeeded"

	// OutcomeSkipped means the item was handled but contributed nothing,
	// e.g. a page without a listing or a duplicate symptom text.
	OutcomeSkipped OutcomeStatus = "skipped"

	// OutcomeFailed means an error stopped processing of the item.
	OutcomeFailed OutcomeStatus = "failed"
)

// Stage names used in reports.
const (
	StageHarvest  = "harvest"
	StageArchive  = "archive"
	StageUnify    = "unify"
	StageResolve  = "resolve"
	StageCollapse = "collapse"
)

// ItemOutcome is the result of processing one item (a letter page, an archive,
// a disease name) within a stage. Errors are carried, never raised.
type ItemOutcome struct {
	// Key identifies the item, e.g. the letter "a" or a disease name.
	Key string

	// Status is the outcome classification.
	Status OutcomeStatus

	// Count is how many values the item contributed.
	Count int

	// Reason explains a skip or failure in a few words.
	Reason string

	// Source is where the data came from, e.g. the page URL.
	Source string

	// Err is the underlying error for failed items.
	Err error
}

// Succeeded builds a successful outcome.
func Succeeded(key string, count int, source string) ItemOutcome {
	return ItemOutcome{Key: key, Status: OutcomeSucceeded, Count: count, Source: source}
}

// Skipped builds a skip outcome.
func Skipped(key, reason string) ItemOutcome {
	return ItemOutcome{Key: key, Status: OutcomeSkipped, Reason: reason}
}

// Failed builds a failure outcome.
func Failed(key string, err error) ItemOutcome {
	reason := ""
	if err != nil {
		reason = err.Error()
	}
	return ItemOutcome{Key: key, Status: OutcomeFailed, Reason: reason, Err: err}
}

// StageReport collects the outcomes of one stage in processing order.
type StageReport struct {
	Stage    string
	Outcomes []ItemOutcome
}

// Add appends an outcome.
func (s *StageReport) Add(o ItemOutcome) {
	s.Outcomes = append(s.Outcomes, o)
}

// Count returns how many outcomes have the given status.
func (s StageReport) Count(status OutcomeStatus) int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Filter returns the outcomes with the given status.
func (s StageReport) Filter(status OutcomeStatus) []ItemOutcome {
	var out []ItemOutcome
	for _, o := range s.Outcomes {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// BuildReport aggregates every stage of a lexicon build.
type BuildReport struct {
	Harvest  StageReport
	Archive  StageReport
	Resolve  StageReport
	Collapse StageReport
}

// Stages returns the stage reports in pipeline order.
func (b BuildReport) Stages() []StageReport {
	return []StageReport{b.Harvest, b.Archive, b.Resolve, b.Collapse}
}

// BuildResult is everything a lexicon build produced.
type BuildResult struct {
	// Names is the unified collection that was resolved.
	Names NameCollection

	// Resolved is the resolver output before duplicate removal.
	Resolved *SymptomRecord

	// Lexicon is the final, persisted record.
	Lexicon *SymptomRecord

	// Report holds the per-item outcomes of every stage.
	Report BuildReport

	// Summary is the run summary recorded in the run history.
	Summary RunSummary
}

// RunSummary is the persisted footprint of one build.
type RunSummary struct {
	ID             string
	StartedAt      time.Time
	FinishedAt     time.Time
	HarvestedNames int
	ArchivedNames  int
	UniqueNames    int
	Resolved       int
	Kept           int
	Failures       int
}
