// Package list provides list display components for the browser.
package list

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/symptomlex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/symptomlex/internal/core/domain"
)

// EntryList displays lexicon entries in a navigable, filterable list.
type EntryList struct {
	all      []domain.SymptomEntry
	visible  []domain.SymptomEntry
	filter   string
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewEntryList creates a new entry list component.
func NewEntryList(s *styles.Styles) *EntryList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &EntryList{
		styles: s,
		width:  80,
		height: 20,
	}
}

// SetEntries replaces the entries and reapplies the current filter.
func (l *EntryList) SetEntries(entries []domain.SymptomEntry) {
	l.all = entries
	l.apply()
}

// SetFilter keeps only entries whose disease or symptoms contain text,
// ignoring case.
func (l *EntryList) SetFilter(text string) {
	if text == l.filter {
		return
	}
	l.filter = text
	l.apply()
}

// Filter returns the current filter text.
func (l *EntryList) Filter() string {
	return l.filter
}

func (l *EntryList) apply() {
	needle := strings.ToLower(strings.TrimSpace(l.filter))
	l.visible = l.visible[:0]
	for _, e := range l.all {
		if needle == "" ||
			strings.Contains(strings.ToLower(e.Disease), needle) ||
			strings.Contains(strings.ToLower(e.Symptoms), needle) {
			l.visible = append(l.visible, e)
		}
	}
	l.selected = 0
}

// View renders the visible window of entries.
func (l *EntryList) View() string {
	if len(l.visible) == 0 {
		if len(l.all) == 0 {
			return l.styles.Muted.Render("Lexicon is empty")
		}
		return l.styles.Muted.Render("No entries match")
	}

	header := l.styles.Subtitle.Render(fmt.Sprintf("Entries (%d of %d)", len(l.visible), len(l.all)))
	lines := []string{header, ""}

	start, end := l.window()
	for i := start; i < end; i++ {
		lines = append(lines, l.renderEntry(i, l.visible[i]))
	}

	return strings.Join(lines, "\n")
}

// window returns the range of entries that fit, keeping the selection in view.
func (l *EntryList) window() (start, end int) {
	rows := l.PageSize()
	if l.selected >= rows {
		start = l.selected - rows + 1
	}
	end = min(start+rows, len(l.visible))
	return start, end
}

func (l *EntryList) renderEntry(index int, entry domain.SymptomEntry) string {
	nameWidth := max(l.width/3, 12)
	name := truncate(entry.Disease, nameWidth)
	symptoms := truncate(entry.Symptoms, max(l.width-nameWidth-6, 10))

	if index == l.selected {
		return l.styles.Selected.Render(fmt.Sprintf("> %-*s  %s", nameWidth, name, symptoms))
	}
	return "  " + l.styles.Disease.Render(fmt.Sprintf("%-*s", nameWidth, name)) +
		"  " + l.styles.Muted.Render(symptoms)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

// Selected returns the index of the selected entry.
func (l *EntryList) Selected() int {
	return l.selected
}

// SelectedEntry returns the currently selected entry, or nil if none.
func (l *EntryList) SelectedEntry() *domain.SymptomEntry {
	if l.selected < 0 || l.selected >= len(l.visible) {
		return nil
	}
	return &l.visible[l.selected]
}

// MoveUp moves selection up.
func (l *EntryList) MoveUp() {
	l.moveBy(-1)
}

// MoveDown moves selection down.
func (l *EntryList) MoveDown() {
	l.moveBy(1)
}

// PageUp moves selection up one page.
func (l *EntryList) PageUp() {
	l.moveBy(-l.PageSize())
}

// PageDown moves selection down one page.
func (l *EntryList) PageDown() {
	l.moveBy(l.PageSize())
}

func (l *EntryList) moveBy(n int) {
	if len(l.visible) == 0 {
		return
	}
	l.selected = max(0, min(l.selected+n, len(l.visible)-1))
}

// PageSize is the number of entries shown at once.
func (l *EntryList) PageSize() int {
	// Header and blank line take two rows.
	return max(l.height-2, 1)
}

// SetDimensions sets the component dimensions.
func (l *EntryList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of visible entries.
func (l *EntryList) Count() int {
	return len(l.visible)
}

// Total returns the number of entries before filtering.
func (l *EntryList) Total() int {
	return len(l.all)
}
