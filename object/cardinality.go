package object

import (
	"strings"

	"github.com/wbrown/janus-objects/graph"
	"github.com/wbrown/janus-objects/graph/store"
	"github.com/wbrown/janus-objects/graph/vocab"
)

// Oracle decides whether a predicate is single-valued for a subject.
// Nothing is cached: every call reads the current schema and data.
type Oracle struct {
	data   store.Store
	schema store.Store
}

// NewOracle creates an oracle reading subject types from data and
// property/class declarations from schema
func NewOracle(data, schema store.Store) Oracle {
	return Oracle{data: data, schema: schema}
}

// IsSingleValued reports whether pred may hold at most one value on subject.
//
// A predicate is single-valued when the schema declares it an
// owl:FunctionalProperty, or when one of the subject's types has a direct
// superclass that is an owl:Restriction on pred with owl:maxCardinality or
// owl:cardinality "1". Everything else is multi-valued.
func (o Oracle) IsSingleValued(pred graph.IRI, subject graph.Term) (bool, error) {
	functional, err := o.schema.Contains(graph.Triple{S: pred, P: vocab.RDFType, O: vocab.OWLFunctionalProperty})
	if err != nil {
		return false, err
	}
	if functional {
		return true, nil
	}

	types, err := o.data.Objects(subject, vocab.RDFType)
	if err != nil {
		return false, err
	}

	for _, class := range types {
		supers, err := o.schema.Objects(class, vocab.RDFSSubClassOf)
		if err != nil {
			return false, err
		}
		for _, super := range supers {
			single, err := o.restrictsToOne(super, pred)
			if err != nil {
				return false, err
			}
			if single {
				return true, nil
			}
		}
	}

	return false, nil
}

// restrictsToOne checks whether class is a restriction limiting pred to one value
func (o Oracle) restrictsToOne(class graph.Term, pred graph.IRI) (bool, error) {
	isRestriction, err := o.schema.Contains(graph.Triple{S: class, P: vocab.RDFType, O: vocab.OWLRestriction})
	if err != nil || !isRestriction {
		return false, err
	}

	onProperty, err := o.schema.Contains(graph.Triple{S: class, P: vocab.OWLOnProperty, O: pred})
	if err != nil || !onProperty {
		return false, err
	}

	for _, card := range []graph.IRI{vocab.OWLMaxCardinality, vocab.OWLCardinality} {
		values, err := o.schema.Objects(class, card)
		if err != nil {
			return false, err
		}
		for _, v := range values {
			if lit, ok := v.(graph.Literal); ok && strings.TrimSpace(lit.Lexical) == "1" {
				return true, nil
			}
		}
	}
	return false, nil
}
