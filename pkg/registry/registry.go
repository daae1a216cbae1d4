// Package registry assigns dense, insertion-ordered integer ids to names.
//
// Ids start at 0 and follow first-seen order, so a tensor axis indexed by
// these ids is reproducible for a given input order. Re-registering a name
// never changes its id or attribute.
package registry

import (
	"strings"
)

// Registry maps names to entries. It is built once and read-only afterwards.
type Registry struct {
	label   string
	entries map[string]Entry
	order   []string
}

// New creates an empty registry. The label ("actor", "concept") only shows up
// in diagnostics.
func New(label string) *Registry {
	return &Registry{
		label:   label,
		entries: make(map[string]Entry),
	}
}

// Build registers every item not seen before. Names are trimmed of
// surrounding whitespace first.
func (r *Registry) Build(items []Item) {
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if _, found := r.entries[name]; found {
			continue
		}

		id := len(r.order)
		if item.HasAttribute {
			r.entries[name] = WithAttribute{id: id, Attribute: item.Attribute}
		} else {
			r.entries[name] = Plain{id: id}
		}
		r.order = append(r.order, name)
	}
}

// Label returns the registry label.
func (r *Registry) Label() string {
	return r.label
}

// ID returns the id registered for name.
func (r *Registry) ID(name string) (int, bool) {
	entry, ok := r.Entry(name)
	if !ok {
		return 0, false
	}
	return entry.ID(), true
}

// Entry returns the stored entry for name.
func (r *Registry) Entry(name string) (Entry, bool) {
	entry, ok := r.entries[strings.TrimSpace(name)]
	return entry, ok
}

// Len returns the number of distinct registered names.
func (r *Registry) Len() int {
	return len(r.order)
}

// Names returns registered names in id order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Reverse returns the id -> record view. Element i describes id i.
func (r *Registry) Reverse() []Record {
	records := make([]Record, len(r.order))
	for name, entry := range r.entries {
		rec := Record{Name: name}
		switch e := entry.(type) {
		case WithAttribute:
			rec.Attribute = e.Attribute
			rec.HasAttribute = true
		case Plain:
		}
		records[entry.ID()] = rec
	}
	return records
}
