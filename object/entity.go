package object

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/wbrown/janus-objects/graph"
	"github.com/wbrown/janus-objects/graph/store"
	"github.com/wbrown/janus-objects/graph/vocab"
)

// Entity is a graph node whose outgoing edges are read and written as
// attributes. It holds no state besides its identifier and its factory;
// every attribute lives in the store.
type Entity struct {
	id graph.Term
	f  *Factory
}

// ID returns the node identifying this entity
func (e *Entity) ID() graph.Term {
	return e.id
}

// Factory returns the factory this entity is bound to
func (e *Entity) Factory() *Factory {
	return e.f
}

// Get reads an attribute. A single-valued attribute returns its native
// value, or ErrMissingValue when unset. A multi-valued attribute returns a
// *Values view, empty when unset.
func (e *Entity) Get(name string) (any, error) {
	pred, single, err := e.attribute(name)
	if err != nil {
		return nil, &AttributeError{Op: "get", Subject: e.id, Name: name, Err: err}
	}
	if !single {
		return e.view(pred), nil
	}

	objs, err := e.f.data.Objects(e.id, pred)
	if err != nil {
		return nil, &AttributeError{Op: "get", Subject: e.id, Name: name, Err: err}
	}
	if len(objs) == 0 {
		return nil, &AttributeError{Op: "get", Subject: e.id, Name: name, Err: ErrMissingValue}
	}

	v, err := e.f.ToNative(pred, objs[0])
	if err != nil {
		return nil, &AttributeError{Op: "get", Subject: e.id, Name: name, Err: err}
	}
	return v, nil
}

// Set writes an attribute.
//
// A single-valued attribute is replaced: existing values are removed and the
// converted value added. A multi-valued attribute only accepts a
// Collection, whose members are added alongside any values already there.
func (e *Entity) Set(name string, a Assignment) error {
	pred, single, err := e.attribute(name)
	if err == nil {
		if single {
			err = e.replace(pred, a.value())
		} else {
			err = e.extend(pred, a)
		}
	}
	if err != nil {
		return &AttributeError{Op: "set", Subject: e.id, Name: name, Err: err}
	}
	return nil
}

func (e *Entity) replace(pred graph.IRI, value any) error {
	// Convert before removing so a bad value leaves the old one in place
	obj, err := e.f.ToTerm(pred, value, e.f.lang)
	if err != nil {
		return err
	}
	if err := e.f.data.Remove(graph.SubjectPredicate(e.id, pred)); err != nil {
		return err
	}
	return e.f.data.Add(graph.Triple{S: e.id, P: pred, O: obj})
}

func (e *Entity) extend(pred graph.IRI, a Assignment) error {
	if a.kind != assignCollection {
		return fmt.Errorf("%w: %s is multi-valued and needs a Collection", ErrInvalidAssignment, pred)
	}
	vals := e.view(pred)
	for _, item := range a.items {
		if err := vals.Add(item); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes every value of an attribute. Deleting an attribute that
// has no values is not an error.
func (e *Entity) Delete(name string) error {
	pred, err := e.f.Resolver().ResolvePredicate(name)
	if err == nil {
		err = e.f.data.Remove(graph.SubjectPredicate(e.id, pred))
	}
	if err != nil {
		return &AttributeError{Op: "delete", Subject: e.id, Name: name, Err: err}
	}
	return nil
}

// Values returns the multi-value view of an attribute regardless of its
// cardinality
func (e *Entity) Values(name string) (*Values, error) {
	pred, err := e.f.Resolver().ResolvePredicate(name)
	if err != nil {
		return nil, &AttributeError{Op: "get", Subject: e.id, Name: name, Err: err}
	}
	return e.view(pred), nil
}

// IsSingleValued reports the current cardinality of an attribute
func (e *Entity) IsSingleValued(name string) (bool, error) {
	_, single, err := e.attribute(name)
	return single, err
}

// Types returns the entity's rdf:type values
func (e *Entity) Types() ([]graph.Term, error) {
	return e.f.data.Objects(e.id, vocab.RDFType)
}

// Properties returns one entity per distinct predicate used on this node
func (e *Entity) Properties() ([]*Entity, error) {
	triples, err := e.f.data.Triples(graph.Subject(e.id))
	if err != nil {
		return nil, err
	}

	var props []*Entity
	seen := make(map[graph.IRI]bool)
	for _, t := range triples {
		if !seen[t.P] {
			seen[t.P] = true
			props = append(props, e.f.Wrap(t.P))
		}
	}
	return props, nil
}

// Triples returns every triple with this entity as subject
func (e *Entity) Triples() ([]graph.Triple, error) {
	return e.f.data.Triples(graph.Subject(e.id))
}

// CopyTo copies every triple reachable from this entity into target,
// following object nodes. Each node is copied once, so cycles terminate.
func (e *Entity) CopyTo(target store.Store) error {
	visited := make(map[graph.Term]bool)
	pending := []graph.Term{e.id}

	for len(pending) > 0 {
		node := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if visited[node] {
			continue
		}
		visited[node] = true

		triples, err := e.f.data.Triples(graph.Subject(node))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", node, err)
		}
		for _, t := range triples {
			if err := target.Add(t); err != nil {
				return fmt.Errorf("failed to copy %s: %w", t, err)
			}
			if graph.IsNode(t.O) && !visited[t.O] {
				pending = append(pending, t.O)
			}
		}
	}
	return nil
}

// Equal reports whether other identifies the same node. other may be an
// *Entity, an Entity or a bare graph.Term.
func (e *Entity) Equal(other any) bool {
	switch o := other.(type) {
	case *Entity:
		return o != nil && o.id == e.id
	case Entity:
		return o.id == e.id
	case graph.Term:
		return o == e.id
	}
	return false
}

// Key returns a comparable map key; equal entities have equal keys
func (e *Entity) Key() graph.Term {
	return e.id
}

// Hash returns a hash of the identifier, consistent with Equal
func (e *Entity) Hash() uint64 {
	return xxhash.Sum64(graph.EncodeTerm(e.id))
}

// String renders the entity by its attribute-style name when one exists
func (e *Entity) String() string {
	if name, err := e.f.Resolver().Unresolve(e.id); err == nil {
		return name
	}
	return e.id.String()
}

// attribute resolves name and asks the oracle for its cardinality
func (e *Entity) attribute(name string) (graph.IRI, bool, error) {
	pred, err := e.f.Resolver().ResolvePredicate(name)
	if err != nil {
		return "", false, err
	}
	single, err := e.f.Oracle().IsSingleValued(pred, e.id)
	if err != nil {
		return "", false, err
	}
	return pred, single, nil
}

func (e *Entity) view(pred graph.IRI) *Values {
	return &Values{subject: e.id, pred: pred, f: e.f}
}
