package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SymptomEntry is one disease and its symptom description.
type SymptomEntry struct {
	Disease  string `json:"disease"`
	Symptoms string `json:"symptoms"`
}

// SymptomRecord maps disease names to symptom text and remembers the order
// in which diseases were added. The first value added for a disease wins.
type SymptomRecord struct {
	order   []string
	entries map[string]string
}

// NewSymptomRecord creates an empty record.
func NewSymptomRecord() *SymptomRecord {
	return &SymptomRecord{entries: make(map[string]string)}
}

// SymptomRecordFromEntries builds a record from entries in order.
// Later entries for an already present disease are ignored.
func SymptomRecordFromEntries(entries []SymptomEntry) *SymptomRecord {
	r := NewSymptomRecord()
	for _, e := range entries {
		r.Add(e.Disease, e.Symptoms)
	}
	return r
}

// Add stores symptoms for disease unless the disease already has an entry.
// It returns false when the existing entry was kept.
func (r *SymptomRecord) Add(disease, symptoms string) bool {
	if r.entries == nil {
		r.entries = make(map[string]string)
	}
	if _, ok := r.entries[disease]; ok {
		return false
	}
	r.entries[disease] = symptoms
	r.order = append(r.order, disease)
	return true
}

// Get returns the symptoms for disease.
func (r *SymptomRecord) Get(disease string) (string, bool) {
	if r == nil {
		return "", false
	}
	s, ok := r.entries[disease]
	return s, ok
}

// Len returns the number of entries.
func (r *SymptomRecord) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

// Entries returns all entries in insertion order.
func (r *SymptomRecord) Entries() []SymptomEntry {
	if r == nil {
		return nil
	}
	out := make([]SymptomEntry, 0, len(r.order))
	for _, d := range r.order {
		out = append(out, SymptomEntry{Disease: d, Symptoms: r.entries[d]})
	}
	return out
}

// MarshalJSON writes the record as a JSON object whose keys follow insertion order.
func (r *SymptomRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(d)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.entries[d])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, keeping the key order of the document.
func (r *SymptomRecord) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: symptom record must be a JSON object", ErrInvalidInput)
	}

	*r = SymptomRecord{entries: make(map[string]string)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: unexpected key %v", ErrInvalidInput, tok)
		}
		var val string
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("decoding symptoms for %q: %w", key, err)
		}
		r.Add(key, val)
	}
	_, err = dec.Token()
	return err
}

// NormaliseSymptomText collapses every whitespace run to a single space and
// trims the ends. Two records are duplicates when these values are equal.
func NormaliseSymptomText(symptoms string) string {
	return strings.Join(strings.Fields(symptoms), " ")
}
