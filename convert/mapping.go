package convert

import (
	"sort"

	"bdd2yolo/bdd"
)

// Mapping assigns each category name a stable integer id. Ids are
// contiguous from 0 in lexicographic name order. Immutable once built.
type Mapping struct {
	ids   map[string]int
	names []string
}

// BuildMapping collects every category named by any label of any frame,
// polygon-bearing or not, and enumerates the sorted set.
func BuildMapping(frames []bdd.Frame) *Mapping {
	set := make(map[string]struct{})
	for _, frame := range frames {
		for _, label := range frame.Labels {
			if label.Category != "" {
				set[label.Category] = struct{}{}
			}
		}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	ids := make(map[string]int, len(names))
	for i, name := range names {
		ids[name] = i
	}
	return &Mapping{ids: ids, names: names}
}

// ID returns the id for a category and whether it is mapped.
func (m *Mapping) ID(category string) (int, bool) {
	id, ok := m.ids[category]
	return id, ok
}

// Names returns the category names in id order.
func (m *Mapping) Names() []string {
	return m.names
}

// Len returns the number of mapped categories.
func (m *Mapping) Len() int {
	return len(m.names)
}
