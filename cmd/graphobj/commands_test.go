package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wbrown/janus-objects/graph"
	"github.com/wbrown/janus-objects/graph/store"
	"github.com/wbrown/janus-objects/object"
)

func newTestSession(t *testing.T) (*session, *bytes.Buffer) {
	color.NoColor = true
	var out bytes.Buffer
	s := &session{f: object.NewFactory(store.NewMemoryStore()), out: &out}
	require.NoError(t, s.run([]string{"bind", "ex", "http://example.org/"}))
	out.Reset()
	return s, &out
}

func TestSessionSetGet(t *testing.T) {
	s, out := newTestSession(t)

	require.NoError(t, s.run([]string{"add", "ex_alice", "ex_nick", "Ally"}))
	require.NoError(t, s.run([]string{"set", "ex_alice", "ex_nick", "Al"}))
	out.Reset()

	require.NoError(t, s.run([]string{"get", "ex_alice", "ex_nick"}))
	assert.Equal(t, "\"Al\"\n\"Ally\"\n", out.String())

	require.NoError(t, s.run([]string{"remove", "ex_alice", "ex_nick", "Al"}))
	out.Reset()
	require.NoError(t, s.run([]string{"get", "<http://example.org/alice>", "ex_nick"}))
	assert.Equal(t, "\"Ally\"\n", out.String())

	require.NoError(t, s.run([]string{"del", "ex_alice", "ex_nick"}))
	out.Reset()
	require.NoError(t, s.run([]string{"get", "ex_alice", "ex_nick"}))
	assert.Empty(t, out.String())
}

func TestSessionErrors(t *testing.T) {
	s, _ := newTestSession(t)

	assert.Error(t, s.run([]string{"frobnicate"}))
	assert.Error(t, s.run([]string{"get", "ex_alice"}))
	assert.Error(t, s.run([]string{"get", "nope_alice", "ex_name"}))
	assert.ErrorIs(t, s.run([]string{"remove", "ex_alice", "ex_nick", "x"}), object.ErrNotPresent)
}

func TestParseValue(t *testing.T) {
	s, _ := newTestSession(t)

	tests := []struct {
		arg  string
		want any
	}{
		{"42", int64(42)},
		{"2.5", 2.5},
		{"true", true},
		{"hello", "hello"},
		{"<http://example.org/x>", graph.IRI("http://example.org/x")},
		{"_:b1", graph.BlankNode{ID: "b1"}},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := s.parseValue(tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := s.parseValue("@ex_bob")
	require.NoError(t, err)
	e, ok := got.(*object.Entity)
	require.True(t, ok)
	assert.Equal(t, graph.IRI("http://example.org/bob"), e.ID())
}

func TestSplitArgs(t *testing.T) {
	assert.Equal(t, []string{"set", "ex_a", "ex_name", "Alice Smith"},
		splitArgs(`set ex_a  ex_name "Alice Smith"`))
	assert.Equal(t, []string{"a", ""}, splitArgs(`a ""`))
	assert.Empty(t, splitArgs("   "))
}
