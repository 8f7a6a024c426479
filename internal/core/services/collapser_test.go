package services

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/symptomlex/internal/core/domain"
	"github.com/custodia-labs/symptomlex/internal/logger"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	logger.SetOutput(buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return buf
}

func TestCollapseDuplicates_KeepsFirstDisease(t *testing.T) {
	log := captureLog(t)
	record := domain.SymptomRecordFromEntries([]domain.SymptomEntry{
		{Disease: "Flu", Symptoms: "Fever,  cough"},
		{Disease: "Cold", Symptoms: "Runny nose"},
		{Disease: "Mumps", Symptoms: "Fever, cough"},
		{Disease: "Grippe", Symptoms: " Fever,\tcough "},
	})

	kept, report := CollapseDuplicates(record)

	assert.Equal(t, []domain.SymptomEntry{
		{Disease: "Flu", Symptoms: "Fever,  cough"},
		{Disease: "Cold", Symptoms: "Runny nose"},
	}, kept.Entries(), "kept values are not rewritten")

	assert.Equal(t, domain.StageCollapse, report.Stage)
	assert.Equal(t, 2, report.Count(domain.OutcomeSucceeded))
	skipped := report.Filter(domain.OutcomeSkipped)
	require.Len(t, skipped, 2)
	assert.Equal(t, "Mumps", skipped[0].Key)
	assert.Equal(t, "duplicate symptoms of Flu", skipped[0].Reason)

	assert.Contains(t, log.String(), "Duplicate symptoms found for: Mumps")
	assert.Contains(t, log.String(), "Duplicate symptoms found for: Grippe")
}

func TestCollapseDuplicates_Idempotent(t *testing.T) {
	captureLog(t)
	record := domain.SymptomRecordFromEntries([]domain.SymptomEntry{
		{Disease: "A", Symptoms: "x  y"},
		{Disease: "B", Symptoms: "x y"},
		{Disease: "C", Symptoms: "z"},
	})

	once, _ := CollapseDuplicates(record)
	twice, report := CollapseDuplicates(once)

	assert.Equal(t, once.Entries(), twice.Entries())
	assert.Zero(t, report.Count(domain.OutcomeSkipped))
}

func TestCollapseDuplicates_LeavesInputUntouched(t *testing.T) {
	captureLog(t)
	record := domain.SymptomRecordFromEntries([]domain.SymptomEntry{
		{Disease: "A", Symptoms: "same"},
		{Disease: "B", Symptoms: "same"},
	})

	CollapseDuplicates(record)

	assert.Equal(t, 2, record.Len())
}

func TestCollapseDuplicates_Empty(t *testing.T) {
	kept, report := CollapseDuplicates(domain.NewSymptomRecord())

	assert.Zero(t, kept.Len())
	assert.Empty(t, report.Outcomes)
}
