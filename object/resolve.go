package object

import (
	"fmt"
	"strings"

	"github.com/wbrown/janus-objects/graph"
	"github.com/wbrown/janus-objects/graph/store"
)

type nameKind uint8

const (
	nameString nameKind = iota
	nameTerm
	nameNone
)

// Name identifies an entity or attribute: a string to resolve, a term
// used as-is, or nothing (a fresh blank node).
type Name struct {
	kind nameKind
	s    string
	term graph.Term
}

// NameString resolves s via the alias table or the prefix_local convention
func NameString(s string) Name { return Name{kind: nameString, s: s} }

// NameTerm uses t unchanged
func NameTerm(t graph.Term) Name { return Name{kind: nameTerm, term: t} }

// NoName allocates a fresh blank node
func NoName() Name { return Name{kind: nameNone} }

func (n Name) String() string {
	switch n.kind {
	case nameTerm:
		return n.term.String()
	case nameNone:
		return "<anonymous>"
	default:
		return n.s
	}
}

// Resolver maps attribute names to graph terms and back
type Resolver struct {
	aliases    *Aliases
	namespaces *store.Namespaces
}

// NewResolver creates a resolver over an alias table and a namespace
// registry
func NewResolver(aliases *Aliases, namespaces *store.Namespaces) Resolver {
	return Resolver{aliases: aliases, namespaces: namespaces}
}

// Resolve turns a name into a term.
//
// Strings containing ':' are taken as absolute IRIs. Otherwise an alias
// wins, and failing that the name is split at its first '_' into a
// namespace prefix and a local name.
func (r Resolver) Resolve(name Name) (graph.Term, error) {
	switch name.kind {
	case nameTerm:
		return name.term, nil
	case nameNone:
		return graph.NewBlankNode(), nil
	}

	s := name.s
	if s == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnresolvableName)
	}
	if strings.Contains(s, ":") {
		return graph.IRI(s), nil
	}
	if r.aliases != nil {
		if iri, ok := r.aliases.Lookup(s); ok {
			return graph.IRI(iri), nil
		}
	}

	prefix, local, ok := strings.Cut(s, "_")
	if !ok {
		return nil, fmt.Errorf("%w: %q has no prefix_local separator", ErrUnresolvableName, s)
	}
	uri, ok := r.namespaces.Lookup(prefix)
	if !ok {
		return nil, fmt.Errorf("%w: unknown namespace prefix %q in %q", ErrUnresolvableName, prefix, s)
	}
	return graph.IRI(uri + local), nil
}

// ResolvePredicate resolves a string attribute name to a predicate IRI
func (r Resolver) ResolvePredicate(name string) (graph.IRI, error) {
	t, err := r.Resolve(NameString(name))
	if err != nil {
		return "", err
	}
	return t.(graph.IRI), nil
}

// Unresolve finds the attribute name for a term: an exact alias first,
// then the longest matching namespace as prefix_local.
func (r Resolver) Unresolve(t graph.Term) (string, error) {
	iri, ok := t.(graph.IRI)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnresolvableTerm, t)
	}
	if r.aliases != nil {
		if name, ok := r.aliases.NameFor(string(iri)); ok {
			return name, nil
		}
	}
	if prefix, local, ok := r.namespaces.Shorten(string(iri)); ok {
		return prefix + "_" + local, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnresolvableTerm, t)
}
