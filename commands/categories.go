package commands

import (
	"sort"
	"strings"
)

// CategoryIndex maps a lower-cased category label to the command names in it.
type CategoryIndex map[string]map[string]struct{}

// Add records name under category.
func (c CategoryIndex) Add(category, name string) {
	category = strings.ToLower(category)
	if _, ok := c[category]; !ok {
		c[category] = make(map[string]struct{})
	}
	c[category][name] = struct{}{}
}

// Names returns the sorted names of a category.
func (c CategoryIndex) Names(category string) ([]string, bool) {
	set, ok := c[strings.ToLower(category)]
	if !ok {
		return nil, false
	}
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, true
}

// Labels returns every category label, sorted.
func (c CategoryIndex) Labels() []string {
	labels := make([]string, 0, len(c))
	for l := range c {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}
