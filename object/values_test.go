package object

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wbrown/janus-objects/graph"
)

func TestValues(t *testing.T) {
	f, _ := newTestFactory(t)
	me := f.MustNamed("ex_me")

	vals, err := me.Values("foaf_nick")
	require.NoError(t, err)
	assert.Equal(t, foaf("nick"), vals.Predicate())

	require.NoError(t, vals.Add("al"))
	require.NoError(t, vals.Add("ally"))
	require.NoError(t, vals.Add("al")) // duplicate

	t.Run("Len", func(t *testing.T) {
		n, err := vals.Len()
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("Contains", func(t *testing.T) {
		ok, err := vals.Contains("al")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = vals.Contains("bob")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = vals.Contains([]any{"al"})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("IteratorIsRestartable", func(t *testing.T) {
		for pass := 0; pass < 2; pass++ {
			var got []any
			it := vals.Iterator()
			for it.Next() {
				got = append(got, it.Value())
			}
			require.NoError(t, it.Err())
			assert.ElementsMatch(t, []any{"al", "ally"}, got)
		}
	})

	t.Run("IteratorIsLazy", func(t *testing.T) {
		it := vals.Iterator()
		require.NoError(t, vals.Add("late"))
		defer vals.Discard("late")

		n := 0
		for it.Next() {
			n++
		}
		assert.Equal(t, 3, n)
	})

	t.Run("Copy", func(t *testing.T) {
		set, err := vals.Copy()
		require.NoError(t, err)
		assert.Equal(t, 2, set.Len())

		// The copy is detached from the store
		require.NoError(t, vals.Add("extra"))
		assert.False(t, set.Has("extra"))
		require.NoError(t, vals.Discard("extra"))
	})

	t.Run("RemoveMissing", func(t *testing.T) {
		err := vals.Remove("nobody")
		assert.ErrorIs(t, err, ErrNotPresent)
	})

	t.Run("DiscardMissing", func(t *testing.T) {
		assert.NoError(t, vals.Discard("nobody"))
		assert.NoError(t, vals.Discard([]any{"x"}))
	})

	t.Run("Remove", func(t *testing.T) {
		require.NoError(t, vals.Remove("ally"))
		got, err := vals.Slice()
		require.NoError(t, err)
		assert.Equal(t, []any{"al"}, got)
	})

	t.Run("Clear", func(t *testing.T) {
		require.NoError(t, vals.Clear())
		n, err := vals.Len()
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})
}

func TestValuesEntities(t *testing.T) {
	f, _ := newTestFactory(t)
	me, you := f.MustNamed("ex_me"), f.MustNamed("ex_you")

	knows, err := me.Values("foaf_knows")
	require.NoError(t, err)
	require.NoError(t, knows.Add(you))

	other := NewFactory(newTestStore(t)).Wrap(ex("you"))
	ok, err := knows.Contains(other)
	require.NoError(t, err)
	assert.True(t, ok)

	set, err := knows.Copy()
	require.NoError(t, err)
	assert.True(t, set.Has(you))
	assert.True(t, set.Has(other))

	require.NoError(t, knows.Remove(you))
	n, err := knows.Len()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestValuesLanguage(t *testing.T) {
	f, st := newTestFactory(t)
	me := f.MustNamed("ex_me")

	vals, err := me.Values("foaf_name")
	require.NoError(t, err)
	require.NoError(t, vals.AddLang("Jean", "fr"))

	ok, err := st.Contains(graph.Triple{S: ex("me"), P: foaf("name"), O: graph.NewLangLiteral("Jean", "fr")})
	require.NoError(t, err)
	assert.True(t, ok)

	// Plain lookups compare against untagged literals
	ok, err = vals.Contains("Jean")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = vals.Contains(graph.NewLangLiteral("Jean", "fr"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = vals.ContainsLang("Jean", "fr")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.ErrorIs(t, vals.Remove("Jean"), ErrNotPresent)
	assert.ErrorIs(t, vals.RemoveLang("Jean", "de"), ErrNotPresent)
	require.NoError(t, vals.RemoveLang("Jean", "fr"))

	n, err := vals.Len()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, vals.AddLang("Jeanne", "fr"))
	require.NoError(t, vals.DiscardLang("Jeanne", "fr"))
	ok, err = vals.ContainsLang("Jeanne", "fr")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValueSet(t *testing.T) {
	f, _ := newTestFactory(t)
	when := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	set := NewValueSet("a", int64(1), when, []any{"x", int64(2)}, f.MustNamed("ex_me"))
	assert.Equal(t, 5, set.Len())
	assert.True(t, set.Has("a"))
	assert.False(t, set.Has(1)) // int is not int64
	assert.True(t, set.Has(when.In(time.FixedZone("X", 3600))))
	assert.True(t, set.Has([]any{"x", int64(2)}))
	assert.False(t, set.Has([]any{"x", "2"}))
	assert.True(t, set.Has(f.Wrap(ex("me"))))
	assert.Len(t, set.Members(), 5)
}
