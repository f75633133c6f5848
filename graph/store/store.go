package store

import (
	"github.com/wbrown/janus-objects/graph"
)

// IndexType represents different index orderings
type IndexType uint8

const (
	SPO IndexType = iota // Subject-Predicate-Object
	POS                  // Predicate-Object-Subject
	OSP                  // Object-Subject-Predicate
)

// Store is the interface for triple storage.
// Pattern fields left nil match anything.
type Store interface {
	// Write operations
	Add(t graph.Triple) error
	Remove(p graph.Pattern) error

	// Read operations
	Triples(p graph.Pattern) ([]graph.Triple, error)
	Objects(s graph.Term, p graph.IRI) ([]graph.Term, error)
	Contains(t graph.Triple) (bool, error)

	// Prefix registry used to shorten IRIs
	Namespaces() *Namespaces

	// Lifecycle
	Close() error
}

// chooseIndex picks the index whose key order makes the bound parts of p a
// key prefix
func chooseIndex(p graph.Pattern) IndexType {
	switch {
	case p.S != nil:
		return SPO
	case p.P != nil:
		return POS
	case p.O != nil:
		return OSP
	default:
		return SPO
	}
}
