package object

import (
	"fmt"

	"github.com/wbrown/janus-objects/graph"
	"github.com/wbrown/janus-objects/graph/vocab"
)

// objectTypes unions the schema ranges of pred with, for node objects, the
// object's own rdf:type values. It is recomputed on every call.
func (f *Factory) objectTypes(pred graph.IRI, obj graph.Term) ([]graph.Term, error) {
	ranges, err := f.schema.Objects(pred, vocab.RDFSRange)
	if err != nil {
		return nil, err
	}

	types := make([]graph.Term, 0, len(ranges))
	seen := make(map[graph.Term]bool, len(ranges))
	for _, r := range ranges {
		if !seen[r] {
			seen[r] = true
			types = append(types, r)
		}
	}

	if obj != nil && graph.IsNode(obj) {
		declared, err := f.data.Objects(obj, vocab.RDFType)
		if err != nil {
			return nil, err
		}
		for _, t := range declared {
			if !seen[t] {
				seen[t] = true
				types = append(types, t)
			}
		}
	}
	return types, nil
}

func hasType(types []graph.Term, want graph.IRI) bool {
	for _, t := range types {
		if t == graph.Term(want) {
			return true
		}
	}
	return false
}

// ToNative converts the object of a pred triple to a Go value: literals
// to scalars, rdf:List chains and rdf:Seq containers to []any, and any
// other node to an *Entity bound to this factory.
func (f *Factory) ToNative(pred graph.IRI, term graph.Term) (any, error) {
	if lit, ok := term.(graph.Literal); ok {
		return decodeLiteral(lit)
	}

	types, err := f.objectTypes(pred, term)
	if err != nil {
		return nil, err
	}

	switch {
	case hasType(types, vocab.RDFList):
		return f.decodeList(term)
	case hasType(types, vocab.RDFSeq):
		return f.decodeSeq(term)
	case graph.IsNode(term):
		return f.Wrap(term), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrConversion, term)
}

// ToTerm converts a Go value to the object term of a pred triple, writing
// any list or container structure it needs into the data store. Entities
// from another store have their subgraph copied in first.
func (f *Factory) ToTerm(pred graph.IRI, value any, lang string) (graph.Term, error) {
	switch v := value.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil value", ErrInvalidAssignment)
	case *Entity:
		if v == nil {
			return nil, fmt.Errorf("%w: nil entity", ErrInvalidAssignment)
		}
		if v.f.data != f.data {
			if err := v.CopyTo(f.data); err != nil {
				return nil, err
			}
		}
		return v.id, nil
	case graph.Term:
		return v, nil
	}

	types, err := f.objectTypes(pred, nil)
	if err != nil {
		return nil, err
	}

	if items, ok := value.([]any); ok {
		switch {
		case hasType(types, vocab.RDFList):
			return f.encodeList(items, lang)
		case hasType(types, vocab.RDFSeq):
			return f.encodeSeq(items, lang)
		}
		return nil, fmt.Errorf("%w: %s has no rdf:List or rdf:Seq range", ErrInvalidAssignment, pred)
	}

	return encodeLiteral(types, value, lang)
}

// termFor mirrors ToTerm without writing anything: entities give their
// bare identifier and collections have no comparable term.
func (f *Factory) termFor(pred graph.IRI, value any, lang string) (graph.Term, bool, error) {
	switch v := value.(type) {
	case nil, []any:
		return nil, false, nil
	case *Entity:
		if v == nil {
			return nil, false, nil
		}
		return v.id, true, nil
	case graph.Term:
		return v, true, nil
	}

	types, err := f.objectTypes(pred, nil)
	if err != nil {
		return nil, false, err
	}
	lit, err := encodeLiteral(types, value, lang)
	if err != nil {
		return nil, false, err
	}
	return lit, true, nil
}

// encodeList writes items as an rdf:first/rdf:rest chain ending in rdf:nil
// and returns the head node
func (f *Factory) encodeList(items []any, lang string) (graph.Term, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: cannot encode an empty list", ErrInvalidAssignment)
	}

	head := graph.NewBlankNode()
	node := head
	for i, item := range items {
		elem, err := f.ToTerm(vocab.RDFFirst, item, lang)
		if err != nil {
			return nil, fmt.Errorf("list element %d: %w", i, err)
		}
		if err := f.data.Add(graph.Triple{S: node, P: vocab.RDFFirst, O: elem}); err != nil {
			return nil, err
		}

		var rest graph.Term = vocab.RDFNil
		next := node
		if i < len(items)-1 {
			next = graph.NewBlankNode()
			rest = next
		}
		if err := f.data.Add(graph.Triple{S: node, P: vocab.RDFRest, O: rest}); err != nil {
			return nil, err
		}
		node = next
	}
	return head, nil
}

// decodeList walks an rdf:first/rdf:rest chain from head. A head with no
// rdf:first is an empty list; a later node without one is malformed.
func (f *Factory) decodeList(head graph.Term) ([]any, error) {
	items := []any{}
	visited := make(map[graph.Term]bool)

	for node := head; node != graph.Term(vocab.RDFNil); {
		if visited[node] {
			return nil, fmt.Errorf("%w: list at %s loops back to %s", ErrStructural, head, node)
		}
		visited[node] = true

		firsts, err := f.data.Objects(node, vocab.RDFFirst)
		if err != nil {
			return nil, err
		}
		if len(firsts) == 0 {
			if node == head {
				return items, nil
			}
			return nil, fmt.Errorf("%w: list node %s has no rdf:first", ErrStructural, node)
		}
		item, err := f.ToNative(vocab.RDFFirst, firsts[0])
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		rests, err := f.data.Objects(node, vocab.RDFRest)
		if err != nil {
			return nil, err
		}
		if len(rests) == 0 {
			return nil, fmt.Errorf("%w: list node %s has no rdf:rest", ErrStructural, node)
		}
		node = rests[0]
	}
	return items, nil
}

// encodeSeq writes items as rdf:_1, rdf:_2, ... edges of a new rdf:Seq node
func (f *Factory) encodeSeq(items []any, lang string) (graph.Term, error) {
	seq := graph.NewBlankNode()
	if err := f.data.Add(graph.Triple{S: seq, P: vocab.RDFType, O: vocab.RDFSeq}); err != nil {
		return nil, err
	}

	for i, item := range items {
		member := vocab.SeqMember(i + 1)
		elem, err := f.ToTerm(member, item, lang)
		if err != nil {
			return nil, fmt.Errorf("sequence element %d: %w", i+1, err)
		}
		if err := f.data.Add(graph.Triple{S: seq, P: member, O: elem}); err != nil {
			return nil, err
		}
	}
	return seq, nil
}

// decodeSeq reads rdf:_1, rdf:_2, ... until the first missing index
func (f *Factory) decodeSeq(seq graph.Term) ([]any, error) {
	items := []any{}
	for i := 1; ; i++ {
		member := vocab.SeqMember(i)
		objs, err := f.data.Objects(seq, member)
		if err != nil {
			return nil, err
		}
		if len(objs) == 0 {
			return items, nil
		}
		item, err := f.ToNative(member, objs[0])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}
