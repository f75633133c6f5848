package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wbrown/janus-objects/graph"
)

func TestResolve(t *testing.T) {
	f, _ := newTestFactory(t)
	r := f.Resolver()

	tests := []struct {
		name string
		in   string
		want graph.Term
	}{
		{"PrefixLocal", "foaf_name", foaf("name")},
		{"SplitOnFirstUnderscore", "ex_has_part", ex("has_part")},
		{"AbsoluteIRI", "http://example.org/thing_one", graph.IRI("http://example.org/thing_one")},
		{"URN", "urn:isbn:123", graph.IRI("urn:isbn:123")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(NameString(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("TermIsIdentity", func(t *testing.T) {
		b := graph.BlankNode{ID: "x"}
		got, err := r.Resolve(NameTerm(b))
		require.NoError(t, err)
		assert.Equal(t, graph.Term(b), got)
	})

	t.Run("NoNameAllocatesBlankNode", func(t *testing.T) {
		a, err := r.Resolve(NoName())
		require.NoError(t, err)
		b, err := r.Resolve(NoName())
		require.NoError(t, err)
		assert.IsType(t, graph.BlankNode{}, a)
		assert.NotEqual(t, a, b)
	})

	t.Run("AliasWinsOverPrefix", func(t *testing.T) {
		f.Alias("foaf_name", "http://example.org/custom#label")
		defer delete(f.Aliases().names, "foaf_name")

		got, err := f.Resolver().Resolve(NameString("foaf_name"))
		require.NoError(t, err)
		assert.Equal(t, graph.Term(graph.IRI("http://example.org/custom#label")), got)
	})

	t.Run("MissingSeparator", func(t *testing.T) {
		_, err := r.Resolve(NameString("name"))
		assert.ErrorIs(t, err, ErrUnresolvableName)
	})

	t.Run("UnknownPrefix", func(t *testing.T) {
		_, err := r.Resolve(NameString("dc_title"))
		assert.ErrorIs(t, err, ErrUnresolvableName)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := r.Resolve(NameString(""))
		assert.ErrorIs(t, err, ErrUnresolvableName)
	})
}

func TestUnresolve(t *testing.T) {
	f, st := newTestFactory(t)
	require.NoError(t, st.Namespaces().Bind("people", exNS+"people/"))

	t.Run("Namespace", func(t *testing.T) {
		name, err := f.Resolver().Unresolve(foaf("knows"))
		require.NoError(t, err)
		assert.Equal(t, "foaf_knows", name)
	})

	t.Run("LongestNamespaceWins", func(t *testing.T) {
		name, err := f.Resolver().Unresolve(ex("people/alice"))
		require.NoError(t, err)
		assert.Equal(t, "people_alice", name)
	})

	t.Run("AliasFirst", func(t *testing.T) {
		f.Alias("nick", string(foaf("nick")))
		name, err := f.Resolver().Unresolve(foaf("nick"))
		require.NoError(t, err)
		assert.Equal(t, "nick", name)
	})

	t.Run("Unmapped", func(t *testing.T) {
		_, err := f.Resolver().Unresolve(graph.IRI("http://nowhere.test/x"))
		assert.ErrorIs(t, err, ErrUnresolvableTerm)
	})

	t.Run("BlankNode", func(t *testing.T) {
		_, err := f.Resolver().Unresolve(graph.BlankNode{ID: "b1"})
		assert.ErrorIs(t, err, ErrUnresolvableTerm)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		term, err := f.Resolver().Resolve(NameString("foaf_mbox"))
		require.NoError(t, err)
		name, err := f.Resolver().Unresolve(term)
		require.NoError(t, err)
		assert.Equal(t, "foaf_mbox", name)
	})
}
