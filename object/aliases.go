package object

import (
	"sort"
)

// Aliases maps attribute names to predicate IRIs, overriding the
// prefix_local convention. One table is shared by every entity of a factory.
type Aliases struct {
	names map[string]string
}

// NewAliases creates a table seeded with the given mappings
func NewAliases(initial map[string]string) *Aliases {
	a := &Aliases{names: make(map[string]string, len(initial))}
	for name, iri := range initial {
		a.names[name] = iri
	}
	return a
}

// Register maps name to iri, replacing any earlier mapping for name
func (a *Aliases) Register(name, iri string) {
	a.names[name] = iri
}

// Lookup returns the IRI registered for name
func (a *Aliases) Lookup(name string) (string, bool) {
	iri, ok := a.names[name]
	return iri, ok
}

// NameFor returns the alias registered for iri. If several names map to
// the same IRI the alphabetically first one wins.
func (a *Aliases) NameFor(iri string) (string, bool) {
	for _, name := range a.Names() {
		if a.names[name] == iri {
			return name, true
		}
	}
	return "", false
}

// Names returns the registered names in sorted order
func (a *Aliases) Names() []string {
	names := make([]string, 0, len(a.names))
	for name := range a.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered aliases
func (a *Aliases) Len() int {
	return len(a.names)
}
