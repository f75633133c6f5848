package graph

import (
	"fmt"
)

// TermKind identifies the kind of a graph term
type TermKind uint8

const (
	KindIRI TermKind = iota
	KindBlank
	KindLiteral
)

// Term is a node or value that can appear in a triple.
// All implementations are comparable value types, so == is structural
// equality and terms can be used directly as map keys.
type Term interface {
	Kind() TermKind
	String() string
}

// IRI is a named node
type IRI string

// Kind returns KindIRI
func (i IRI) Kind() TermKind { return KindIRI }

// String returns the IRI in angle brackets
func (i IRI) String() string { return "<" + string(i) + ">" }

// Value returns the bare IRI string
func (i IRI) Value() string { return string(i) }

// BlankNode is an anonymous node, identified only within its store
type BlankNode struct {
	ID string
}

// Kind returns KindBlank
func (b BlankNode) Kind() TermKind { return KindBlank }

// String returns the blank node identifier prefixed with "_:"
func (b BlankNode) String() string { return "_:" + b.ID }

// Literal is a lexical value with an optional datatype or language tag
type Literal struct {
	Lexical  string
	Datatype IRI
	Lang     string
}

// Kind returns KindLiteral
func (l Literal) Kind() TermKind { return KindLiteral }

// String returns the literal in N-Triples form
func (l Literal) String() string {
	if l.Lang != "" {
		return fmt.Sprintf("%q@%s", l.Lexical, l.Lang)
	}
	if l.Datatype != "" {
		return fmt.Sprintf("%q^^%s", l.Lexical, l.Datatype.String())
	}
	return fmt.Sprintf("%q", l.Lexical)
}

// NewLiteral creates an untyped literal
func NewLiteral(lexical string) Literal {
	return Literal{Lexical: lexical}
}

// NewTypedLiteral creates a literal tagged with a datatype
func NewTypedLiteral(lexical string, datatype IRI) Literal {
	return Literal{Lexical: lexical, Datatype: datatype}
}

// NewLangLiteral creates a language-tagged literal
func NewLangLiteral(lexical, lang string) Literal {
	return Literal{Lexical: lexical, Lang: lang}
}

// IsNode reports whether t is a named or blank node, i.e. something that
// can be the subject of further triples.
func IsNode(t Term) bool {
	switch t.(type) {
	case IRI, BlankNode:
		return true
	}
	return false
}

// Triple is a single subject-predicate-object statement
type Triple struct {
	S Term // IRI or BlankNode
	P IRI
	O Term
}

// String returns the triple in N-Triples form
func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s .", t.S, t.P, t.O)
}

// Pattern matches triples; a nil field is a wildcard
type Pattern struct {
	S Term
	P *IRI
	O Term
}

// Match reports whether a triple satisfies the pattern
func (p Pattern) Match(t Triple) bool {
	if p.S != nil && p.S != t.S {
		return false
	}
	if p.P != nil && *p.P != t.P {
		return false
	}
	if p.O != nil && p.O != t.O {
		return false
	}
	return true
}

// Subject returns a pattern matching every triple about s
func Subject(s Term) Pattern {
	return Pattern{S: s}
}

// SubjectPredicate returns a pattern matching (s, p, *)
func SubjectPredicate(s Term, p IRI) Pattern {
	return Pattern{S: s, P: &p}
}

// Exact returns a pattern matching only t
func Exact(t Triple) Pattern {
	p := t.P
	return Pattern{S: t.S, P: &p, O: t.O}
}
