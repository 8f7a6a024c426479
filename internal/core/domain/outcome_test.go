package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeConstructors(t *testing.T) {
	ok := Succeeded("a", 12, "https://directory.test/a")
	assert.Equal(t, OutcomeSucceeded, ok.Status)
	assert.Equal(t, 12, ok.Count)
	assert.Equal(t, "https://directory.test/a", ok.Source)

	skip := Skipped("b", "no listing")
	assert.Equal(t, OutcomeSkipped, skip.Status)
	assert.Equal(t, "no listing", skip.Reason)

	err := errors.New("timeout")
	fail := Failed("c", err)
	assert.Equal(t, OutcomeFailed, fail.Status)
	assert.Equal(t, "timeout", fail.Reason)
	assert.ErrorIs(t, fail.Err, err)

	assert.Empty(t, Failed("d", nil).Reason)
}

func TestStageReport(t *testing.T) {
	report := StageReport{Stage: StageHarvest}
	report.Add(Succeeded("a", 1, ""))
	report.Add(Skipped("b", "empty"))
	report.Add(Failed("c", errors.New("boom")))
	report.Add(Succeeded("d", 3, ""))

	assert.Equal(t, 2, report.Count(OutcomeSucceeded))
	assert.Equal(t, 1, report.Count(OutcomeSkipped))
	assert.Equal(t, 1, report.Count(OutcomeFailed))

	failed := report.Filter(OutcomeFailed)
	assert.Len(t, failed, 1)
	assert.Equal(t, "c", failed[0].Key)
	assert.Empty(t, report.Filter("unknown"))
}

func TestBuildReport_StagesInOrder(t *testing.T) {
	b := BuildReport{
		Harvest:  StageReport{Stage: StageHarvest},
		Archive:  StageReport{Stage: StageArchive},
		Resolve:  StageReport{Stage: StageResolve},
		Collapse: StageReport{Stage: StageCollapse},
	}

	var names []string
	for _, s := range b.Stages() {
		names = append(names, s.Stage)
	}
	assert.Equal(t, []string{StageHarvest, StageArchive, StageResolve, StageCollapse}, names)
}
