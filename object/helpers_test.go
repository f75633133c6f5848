package object

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wbrown/janus-objects/graph"
	"github.com/wbrown/janus-objects/graph/store"
	"github.com/wbrown/janus-objects/graph/vocab"
)

const (
	exNS   = "http://example.org/"
	foafNS = "http://xmlns.com/foaf/0.1/"
)

// newTestStore creates a memory store with ex and foaf bound on top of
// the default prefixes
func newTestStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	st := store.NewMemoryStore()
	ns := st.Namespaces()
	require.NoError(t, ns.Bind("ex", exNS))
	require.NoError(t, ns.Bind("foaf", foafNS))
	return st
}

func newTestFactory(t *testing.T) (*Factory, *store.MemoryStore) {
	t.Helper()
	st := newTestStore(t)
	return NewFactory(st), st
}

func add(t *testing.T, st store.Store, s graph.Term, p graph.IRI, o graph.Term) {
	t.Helper()
	require.NoError(t, st.Add(graph.Triple{S: s, P: p, O: o}))
}

func ex(local string) graph.IRI   { return graph.IRI(exNS + local) }
func foaf(local string) graph.IRI { return graph.IRI(foafNS + local) }

// declareFunctional marks pred as an owl:FunctionalProperty in schema
func declareFunctional(t *testing.T, schema store.Store, pred graph.IRI) {
	t.Helper()
	add(t, schema, pred, vocab.RDFType, vocab.OWLFunctionalProperty)
}

// declareRange sets the rdfs:range of pred in schema
func declareRange(t *testing.T, schema store.Store, pred graph.IRI, rng graph.IRI) {
	t.Helper()
	add(t, schema, pred, vocab.RDFSRange, rng)
}
