package object

import (
	"fmt"
	"strings"
	"time"

	"github.com/wbrown/janus-objects/graph"
)

// Values is a live, set-like view over the triples (subject, predicate, *).
// It refers to its entity only by identifier and is not itself stored.
type Values struct {
	subject graph.Term
	pred    graph.IRI
	f       *Factory
}

// Predicate returns the predicate this view covers
func (v *Values) Predicate() graph.IRI {
	return v.pred
}

// Len returns the number of values
func (v *Values) Len() (int, error) {
	objs, err := v.f.data.Objects(v.subject, v.pred)
	if err != nil {
		return 0, err
	}
	return len(objs), nil
}

// Contains reports whether value is present, with strings compared under
// the factory's default language. Entities are compared by identifier only
// and are never copied between stores here.
func (v *Values) Contains(value any) (bool, error) {
	return v.ContainsLang(value, v.f.lang)
}

// ContainsLang is Contains with an explicit language tag for strings
func (v *Values) ContainsLang(value any, lang string) (bool, error) {
	obj, ok, err := v.f.termFor(v.pred, value, lang)
	if err != nil || !ok {
		return false, err
	}
	return v.f.data.Contains(graph.Triple{S: v.subject, P: v.pred, O: obj})
}

// Add inserts value, copying an entity's subgraph in when it belongs to
// another store
func (v *Values) Add(value any) error {
	return v.AddLang(value, v.f.lang)
}

// AddLang inserts value with an explicit language tag for string literals.
// A tagged string is a different literal from the untagged one, so it is
// found and removed through ContainsLang, RemoveLang and DiscardLang.
func (v *Values) AddLang(value any, lang string) error {
	obj, err := v.f.ToTerm(v.pred, value, lang)
	if err != nil {
		return err
	}
	return v.f.data.Add(graph.Triple{S: v.subject, P: v.pred, O: obj})
}

// Remove deletes value, failing with ErrNotPresent if it is absent
func (v *Values) Remove(value any) error {
	return v.RemoveLang(value, v.f.lang)
}

// RemoveLang is Remove with an explicit language tag for strings
func (v *Values) RemoveLang(value any, lang string) error {
	ok, err := v.ContainsLang(value, lang)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %v in %s", ErrNotPresent, value, v.pred)
	}
	return v.DiscardLang(value, lang)
}

// Discard deletes value if present
func (v *Values) Discard(value any) error {
	return v.DiscardLang(value, v.f.lang)
}

// DiscardLang is Discard with an explicit language tag for strings
func (v *Values) DiscardLang(value any, lang string) error {
	obj, ok, err := v.f.termFor(v.pred, value, lang)
	if err != nil || !ok {
		return err
	}
	return v.f.data.Remove(graph.Exact(graph.Triple{S: v.subject, P: v.pred, O: obj}))
}

// Clear deletes every value
func (v *Values) Clear() error {
	return v.f.data.Remove(graph.SubjectPredicate(v.subject, v.pred))
}

// Iterator starts a new pass over the current values. The store is read
// on the first call to Next and each value is converted as it is reached.
func (v *Values) Iterator() *ValueIterator {
	return &ValueIterator{values: v}
}

// Slice converts every current value
func (v *Values) Slice() ([]any, error) {
	var result []any
	it := v.Iterator()
	for it.Next() {
		result = append(result, it.Value())
	}
	return result, it.Err()
}

// Copy materializes the current values as an in-memory set
func (v *Values) Copy() (*ValueSet, error) {
	items, err := v.Slice()
	if err != nil {
		return nil, err
	}
	set := NewValueSet()
	for _, item := range items {
		set.Add(item)
	}
	return set, nil
}

// ValueIterator walks the values of a view
type ValueIterator struct {
	values  *Values
	objs    []graph.Term
	loaded  bool
	pos     int
	current any
	err     error
}

// Next advances to the next value, returning false at the end or on error
func (it *ValueIterator) Next() bool {
	if it.err != nil {
		return false
	}
	if !it.loaded {
		it.objs, it.err = it.values.f.data.Objects(it.values.subject, it.values.pred)
		it.loaded = true
		if it.err != nil {
			return false
		}
	}
	if it.pos >= len(it.objs) {
		return false
	}

	it.current, it.err = it.values.f.ToNative(it.values.pred, it.objs[it.pos])
	it.pos++
	return it.err == nil
}

// Value returns the current value
func (it *ValueIterator) Value() any {
	return it.current
}

// Err returns the error that stopped iteration, if any
func (it *ValueIterator) Err() error {
	return it.err
}

// ValueSet is a plain in-memory set of native values. Entities are keyed by
// identifier, lists by their contents.
type ValueSet struct {
	members map[any]any
}

// NewValueSet creates an empty set
func NewValueSet(items ...any) *ValueSet {
	s := &ValueSet{members: make(map[any]any, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts v
func (s *ValueSet) Add(v any) {
	s.members[setKey(v)] = v
}

// Has reports whether v is a member
func (s *ValueSet) Has(v any) bool {
	_, ok := s.members[setKey(v)]
	return ok
}

// Len returns the number of members
func (s *ValueSet) Len() int {
	return len(s.members)
}

// Members returns the members in no particular order
func (s *ValueSet) Members() []any {
	result := make([]any, 0, len(s.members))
	for _, v := range s.members {
		result = append(result, v)
	}
	return result
}

type entityKey struct{ id graph.Term }
type listKey string
type timeKey string

// setKey maps a native value to a comparable key
func setKey(v any) any {
	switch val := v.(type) {
	case *Entity:
		return entityKey{val.id}
	case time.Time:
		return timeKey(val.UTC().Format(time.RFC3339Nano))
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = fmt.Sprintf("%T:%v", item, setKey(item))
		}
		return listKey("[" + strings.Join(parts, " ") + "]")
	}
	return v
}
