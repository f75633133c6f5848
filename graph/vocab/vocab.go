// Package vocab holds the RDF, RDFS, OWL and XSD terms the object layer
// reasons about.
package vocab

import (
	"strconv"

	"github.com/wbrown/janus-objects/graph"
)

// Namespace IRIs
const (
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	OWLNamespace  = "http://www.w3.org/2002/07/owl#"
	XSDNamespace  = "http://www.w3.org/2001/XMLSchema#"
)

// RDF
const (
	RDFType  = graph.IRI(RDFNamespace + "type")
	RDFList  = graph.IRI(RDFNamespace + "List")
	RDFFirst = graph.IRI(RDFNamespace + "first")
	RDFRest  = graph.IRI(RDFNamespace + "rest")
	RDFNil   = graph.IRI(RDFNamespace + "nil")
	RDFSeq   = graph.IRI(RDFNamespace + "Seq")
)

// RDFS
const (
	RDFSSubClassOf = graph.IRI(RDFSNamespace + "subClassOf")
	RDFSRange      = graph.IRI(RDFSNamespace + "range")
)

// OWL
const (
	OWLFunctionalProperty = graph.IRI(OWLNamespace + "FunctionalProperty")
	OWLRestriction        = graph.IRI(OWLNamespace + "Restriction")
	OWLOnProperty         = graph.IRI(OWLNamespace + "onProperty")
	OWLMaxCardinality     = graph.IRI(OWLNamespace + "maxCardinality")
	OWLCardinality        = graph.IRI(OWLNamespace + "cardinality")
)

// XSD datatypes
const (
	XSDString             = graph.IRI(XSDNamespace + "string")
	XSDBoolean            = graph.IRI(XSDNamespace + "boolean")
	XSDInteger            = graph.IRI(XSDNamespace + "integer")
	XSDInt                = graph.IRI(XSDNamespace + "int")
	XSDLong               = graph.IRI(XSDNamespace + "long")
	XSDShort              = graph.IRI(XSDNamespace + "short")
	XSDByte               = graph.IRI(XSDNamespace + "byte")
	XSDNonNegativeInteger = graph.IRI(XSDNamespace + "nonNegativeInteger")
	XSDPositiveInteger    = graph.IRI(XSDNamespace + "positiveInteger")
	XSDNegativeInteger    = graph.IRI(XSDNamespace + "negativeInteger")
	XSDNonPositiveInteger = graph.IRI(XSDNamespace + "nonPositiveInteger")
	XSDUnsignedLong       = graph.IRI(XSDNamespace + "unsignedLong")
	XSDUnsignedInt        = graph.IRI(XSDNamespace + "unsignedInt")
	XSDDecimal            = graph.IRI(XSDNamespace + "decimal")
	XSDDouble             = graph.IRI(XSDNamespace + "double")
	XSDFloat              = graph.IRI(XSDNamespace + "float")
	XSDDateTime           = graph.IRI(XSDNamespace + "dateTime")
)

// SeqMember returns the container membership property rdf:_n
func SeqMember(n int) graph.IRI {
	return graph.IRI(RDFNamespace + "_" + strconv.Itoa(n))
}
