package domain

import (
	"slices"
	"strings"
)

// CleanName trims a raw disease name and reports whether the result is usable.
// A disease name is never empty and never carries surrounding whitespace.
func CleanName(raw string) (string, bool) {
	name := strings.TrimSpace(raw)
	return name, name != ""
}

// NameCollection is the ordered, duplicate-free sequence of disease names
// handed to the resolver. It is built once and never mutated.
type NameCollection struct {
	names []string
}

// NewNameCollection wraps an already sorted, duplicate-free slice.
// The slice is copied so later changes by the caller are not observed.
func NewNameCollection(sorted []string) NameCollection {
	return NameCollection{names: slices.Clone(sorted)}
}

// Len returns the number of names.
func (c NameCollection) Len() int {
	return len(c.names)
}

// Names returns a copy of the names in order.
func (c NameCollection) Names() []string {
	return slices.Clone(c.names)
}

// At returns the name at position i.
func (c NameCollection) At(i int) string {
	return c.names[i]
}
