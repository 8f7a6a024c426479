package services

import (
	"slices"

	"github.com/custodia-labs/symptomlex/internal/core/domain"
)

// UnifyNames returns the sorted union of all given name sequences.
// Names are compared by exact string value, so "Flu" and "flu" stay distinct.
func UnifyNames(sources ...[]string) domain.NameCollection {
	size := 0
	for _, s := range sources {
		size += len(s)
	}

	seen := make(map[string]struct{}, size)
	union := make([]string, 0, size)
	for _, s := range sources {
		for _, name := range s {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			union = append(union, name)
		}
	}

	slices.Sort(union)
	return domain.NewNameCollection(union)
}
