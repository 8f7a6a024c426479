package infobox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(rows string) []byte {
	return []byte(`<html><body><h1>Influenza</h1>
<table class="infobox vevent"><tbody>` + rows + `</tbody></table>
<p>Article body mentioning Symptoms in passing.</p></body></html>`)
}

func TestNew(t *testing.T) {
	extractor := New()
	require.NotNil(t, extractor)
	assert.Equal(t, DefaultTableClass, extractor.tableClass)
	assert.Equal(t, DefaultHeaderLabel, extractor.headerLabel)
}

func TestExtractSymptoms_StripsCitations(t *testing.T) {
	body := page(`<tr><th scope="row">Specialty</th><td>Infectious disease</td></tr>
<tr><th scope="row">Symptoms</th><td>Fever, cough<sup><a href="#cite-1">[1]</a></sup><sup><a href="#cite-2">[2]</a></sup></td></tr>`)

	text, ok, err := New().ExtractSymptoms(body)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Fever, cough", text)
}

func TestExtractSymptoms_JoinsFragments(t *testing.T) {
	body := page(`<tr><th scope="row">Symptoms</th><td><a href="/wiki/Fever">Fever</a><br>runny nose<br/>headache<sup>[3]</sup></td></tr>`)

	text, ok, err := New().ExtractSymptoms(body)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Fever, runny nose, headache", text)
}

func TestExtractSymptoms_NoInfobox(t *testing.T) {
	body := []byte(`<html><body><table class="wikitable"><tr><th scope="row">Symptoms</th><td>Fever</td></tr></table></body></html>`)

	text, ok, err := New().ExtractSymptoms(body)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, text)
}

func TestExtractSymptoms_RequiresRowScope(t *testing.T) {
	body := page(`<tr><th>Symptoms</th><td>Fever</td></tr>`)

	_, ok, err := New().ExtractSymptoms(body)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExtractSymptoms_HeaderIsCaseSensitive(t *testing.T) {
	body := page(`<tr><th scope="row">symptoms</th><td>Fever</td></tr>`)

	_, ok, err := New().ExtractSymptoms(body)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExtractSymptoms_HeaderWithoutCellMovesOn(t *testing.T) {
	body := page(`<tr><th scope="row" colspan="2">Symptoms</th></tr>
<tr><th scope="row">Symptoms (early)</th><td>Fatigue</td></tr>`)

	text, ok, err := New().ExtractSymptoms(body)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Fatigue", text)
}

func TestExtractSymptoms_FirstMatchingRowWins(t *testing.T) {
	body := page(`<tr><th scope="row">Symptoms</th><td>Swollen glands</td></tr>
<tr><th scope="row">Rare symptoms</th><td>Deafness</td></tr>`)

	text, ok, err := New().ExtractSymptoms(body)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Swollen glands", text)
}

func TestExtractSymptoms_CitationOnlyCellIsSkipped(t *testing.T) {
	body := page(`<tr><th scope="row">Symptoms</th><td><sup>[1]</sup></td></tr>
<tr><th scope="row">Symptoms (other)</th><td>Rash</td></tr>`)

	text, ok, err := New().ExtractSymptoms(body)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Rash", text)
}

func TestCleanFragments(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		want      string
	}{
		{name: "empty", fragments: nil, want: ""},
		{name: "single", fragments: []string{"Fever"}, want: "Fever"},
		{name: "citation fragments dropped", fragments: []string{"Fever", "[1]", "cough", "[2]"}, want: "Fever, cough"},
		{name: "inline citation", fragments: []string{"Fever[note 1] and chills"}, want: "Fever and chills"},
		{name: "split marker", fragments: []string{"Fever", "[", "3", "]"}, want: "Fever"},
		{name: "split marker between fragments", fragments: []string{"Fever", "[", "3", "]", "cough"}, want: "Fever, cough"},
		{name: "leading split marker", fragments: []string{"[", "a", "]", "Rash"}, want: "Rash"},
		{name: "fragment ending in comma", fragments: []string{"Fever,", "cough"}, want: "Fever,, cough"},
		{name: "cell separators kept", fragments: []string{"Fever,, cough"}, want: "Fever,, cough"},
		{name: "edge separators kept", fragments: []string{", Fever, cough,"}, want: ", Fever, cough,"},
		{name: "whitespace only", fragments: []string{"  ", "\n"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanFragments(tt.fragments))
		})
	}
}

func TestStripCitations(t *testing.T) {
	assert.Equal(t, "Fever, cough", StripCitations("Fever, cough[1][2]"))
	assert.Equal(t, "Rash", StripCitations("Rash[citation needed]"))
	assert.Equal(t, "no markers", StripCitations("no markers"))
}
