package list

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/symptomlex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/symptomlex/internal/core/domain"
)

func sampleEntries() []domain.SymptomEntry {
	return []domain.SymptomEntry{
		{Disease: "Asthma", Symptoms: "Wheezing, shortness of breath"},
		{Disease: "Flu", Symptoms: "Fever, cough"},
		{Disease: "Mumps", Symptoms: "Fever, swollen glands"},
	}
}

func newList() *EntryList {
	l := NewEntryList(styles.PlainStyles())
	l.SetEntries(sampleEntries())
	return l
}

func TestEntryList_Empty(t *testing.T) {
	l := NewEntryList(nil)

	assert.Nil(t, l.SelectedEntry())
	assert.Contains(t, l.View(), "Lexicon is empty")
	l.MoveDown()
	assert.Equal(t, 0, l.Selected())
}

func TestEntryList_Navigation(t *testing.T) {
	l := newList()

	require.Equal(t, "Asthma", l.SelectedEntry().Disease)
	l.MoveDown()
	l.MoveDown()
	l.MoveDown()
	assert.Equal(t, "Mumps", l.SelectedEntry().Disease)

	l.MoveUp()
	assert.Equal(t, "Flu", l.SelectedEntry().Disease)

	l.PageUp()
	assert.Equal(t, 0, l.Selected())
	l.PageDown()
	assert.Equal(t, 2, l.Selected())
}

func TestEntryList_Filter(t *testing.T) {
	l := newList()

	l.SetFilter("FEVER")
	assert.Equal(t, 2, l.Count())
	assert.Equal(t, 3, l.Total())
	assert.Equal(t, "Flu", l.SelectedEntry().Disease)

	l.SetFilter("asth")
	assert.Equal(t, 1, l.Count())
	assert.Equal(t, "Asthma", l.SelectedEntry().Disease)

	l.SetFilter("measles")
	assert.Equal(t, 0, l.Count())
	assert.Nil(t, l.SelectedEntry())
	assert.Contains(t, l.View(), "No entries match")

	l.SetFilter("")
	assert.Equal(t, 3, l.Count())
}

func TestEntryList_FilterResetsSelection(t *testing.T) {
	l := newList()
	l.MoveDown()
	l.MoveDown()

	l.SetFilter("f")
	assert.Equal(t, 0, l.Selected())
}

func TestEntryList_ViewMarksSelection(t *testing.T) {
	l := newList()
	l.SetDimensions(80, 10)
	l.MoveDown()

	view := l.View()
	assert.Contains(t, view, "Entries (3 of 3)")
	for _, line := range strings.Split(view, "\n") {
		if strings.HasPrefix(line, "> ") {
			assert.Contains(t, line, "Flu")
		}
	}
}

func TestEntryList_WindowFollowsSelection(t *testing.T) {
	l := newList()
	l.SetDimensions(80, 3) // one entry per page

	l.MoveDown()
	l.MoveDown()

	view := l.View()
	assert.Contains(t, view, "Mumps")
	assert.NotContains(t, view, "Asthma")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Flu", truncate("Flu", 10))
	assert.Equal(t, "Swolle...", truncate("Swollen glands", 9))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
