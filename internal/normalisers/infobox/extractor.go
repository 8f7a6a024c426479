package infobox

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/symptomlex/internal/connectors/web"
	"github.com/custodia-labs/symptomlex/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.SymptomExtractor = (*Extractor)(nil)

// Defaults for the encyclopedia's markup.
const (
	DefaultTableClass  = "infobox"
	DefaultHeaderLabel = "Symptom"
	FragmentSeparator  = ", "
)

// Pre-compiled regular expressions for text cleanup.
var (
	citationMarker = regexp.MustCompile(`\[.*?\]`)
	// A marker spanning fragments, with the separators on either side.
	joinedMarker = regexp.MustCompile(
		`(` + regexp.QuoteMeta(FragmentSeparator) + `)?\[.*?\](` + regexp.QuoteMeta(FragmentSeparator) + `)?`)
)

// Extractor reads symptom rows out of infobox tables.
type Extractor struct {
	tableClass  string
	headerLabel string
}

// New creates an extractor for the default infobox markup.
func New() *Extractor {
	return &Extractor{
		tableClass:  DefaultTableClass,
		headerLabel: DefaultHeaderLabel,
	}
}

// ExtractSymptoms returns the cleaned text of the first symptom row.
//
// Rows are scanned in document order. A row matches when its first
// th[scope=row] contains the header label (case-sensitive). A matching row
// without a data cell, or whose text is empty once citations are removed,
// is passed over.
func (e *Extractor) ExtractSymptoms(page []byte) (string, bool, error) {
	doc, err := web.Parse(page)
	if err != nil {
		return "", false, err
	}

	table := web.Find(doc, web.ElementWithClass("table", e.tableClass))
	if table == nil {
		return "", false, nil
	}

	for _, row := range web.FindAll(table, web.Element("tr")) {
		header := web.Find(row, web.ElementWithAttr("th", "scope", "row"))
		if header == nil || !strings.Contains(web.RawText(header), e.headerLabel) {
			continue
		}
		cell := web.Find(row, web.Element("td"))
		if cell == nil {
			continue
		}
		if text := CleanFragments(web.Fragments(cell)); text != "" {
			return text, true, nil
		}
	}
	return "", false, nil
}

// CleanFragments removes citation markers from each text fragment, drops
// fragments left empty and joins the rest with a comma and a space.
// Markers split across fragments ("[", "3", "]") are removed after joining
// together with the separator they would leave behind. Separators that are
// part of the cell text are kept as they are.
func CleanFragments(fragments []string) string {
	kept := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f = strings.TrimSpace(StripCitations(f)); f != "" {
			kept = append(kept, f)
		}
	}
	joined := joinedMarker.ReplaceAllStringFunc(strings.Join(kept, FragmentSeparator), func(m string) string {
		if strings.HasPrefix(m, FragmentSeparator) && strings.HasSuffix(m, FragmentSeparator) {
			return FragmentSeparator
		}
		return ""
	})
	return strings.TrimSpace(joined)
}

// StripCitations removes bracketed markers such as "[1]" or "[citation needed]".
func StripCitations(s string) string {
	return citationMarker.ReplaceAllString(s, "")
}
