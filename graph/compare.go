package graph

import (
	"sort"
	"strings"
)

// CompareTerms orders terms and returns:
//
//	-1 if left < right
//	 0 if left == right
//	 1 if left > right
//
// IRIs sort before blank nodes, blank nodes before literals. Within a kind,
// terms compare by their string fields. A nil term is less than any non-nil
// term.
func CompareTerms(left, right Term) int {
	if left == nil && right == nil {
		return 0
	}
	if left == nil {
		return -1
	}
	if right == nil {
		return 1
	}

	if lk, rk := left.Kind(), right.Kind(); lk != rk {
		if lk < rk {
			return -1
		}
		return 1
	}

	switch l := left.(type) {
	case IRI:
		if r, ok := right.(IRI); ok {
			return strings.Compare(string(l), string(r))
		}
	case BlankNode:
		if r, ok := right.(BlankNode); ok {
			return strings.Compare(l.ID, r.ID)
		}
	case Literal:
		if r, ok := right.(Literal); ok {
			if c := strings.Compare(l.Lexical, r.Lexical); c != 0 {
				return c
			}
			if c := strings.Compare(string(l.Datatype), string(r.Datatype)); c != 0 {
				return c
			}
			return strings.Compare(l.Lang, r.Lang)
		}
	}

	// Foreign Term implementations of the same kind
	return strings.Compare(left.String(), right.String())
}

// CompareTriples orders triples by subject, predicate, then object
func CompareTriples(a, b Triple) int {
	if c := CompareTerms(a.S, b.S); c != 0 {
		return c
	}
	if c := strings.Compare(string(a.P), string(b.P)); c != 0 {
		return c
	}
	return CompareTerms(a.O, b.O)
}

// SortTriples sorts triples in place in SPO order
func SortTriples(triples []Triple) {
	sort.Slice(triples, func(i, j int) bool {
		return CompareTriples(triples[i], triples[j]) < 0
	})
}

// SortTerms sorts terms in place
func SortTerms(terms []Term) {
	sort.Slice(terms, func(i, j int) bool {
		return CompareTerms(terms[i], terms[j]) < 0
	})
}
