package services

import (
	"fmt"

	"github.com/custodia-labs/symptomlex/internal/core/domain"
	"github.com/custodia-labs/symptomlex/internal/logger"
)

// CollapseDuplicates keeps the first disease for each distinct normalised
// symptom text and drops every later disease sharing it. The input record
// is not modified; symptom values are carried over untouched.
//
// The key is the symptom text, not the disease name, so two different
// diseases described identically collapse into the first one seen.
func CollapseDuplicates(record *domain.SymptomRecord) (*domain.SymptomRecord, domain.StageReport) {
	report := domain.StageReport{Stage: domain.StageCollapse}
	kept := domain.NewSymptomRecord()
	keptBy := make(map[string]string, record.Len())

	for _, entry := range record.Entries() {
		key := domain.NormaliseSymptomText(entry.Symptoms)
		if first, dup := keptBy[key]; dup {
			logger.Notice("Duplicate symptoms found for: %s", entry.Disease)
			report.Add(domain.Skipped(entry.Disease, fmt.Sprintf("duplicate symptoms of %s", first)))
			continue
		}
		keptBy[key] = entry.Disease
		kept.Add(entry.Disease, entry.Symptoms)
		report.Add(domain.Succeeded(entry.Disease, 1, ""))
	}

	return kept, report
}
