package store

import (
	"fmt"

	"github.com/wbrown/janus-objects/graph"
)

// Key prefixes separate the triple indices from metadata records
const (
	namespacePrefix byte = 0x80
)

// KeyEncoder builds and parses index keys from triples
type KeyEncoder struct{}

// EncodeKey creates an index key from a triple
func (e KeyEncoder) EncodeKey(index IndexType, t graph.Triple) []byte {
	// Each index has a 1-byte prefix to separate namespaces
	prefix := []byte{byte(index)}

	s := graph.EncodeTerm(t.S)
	p := graph.EncodeTerm(t.P)
	o := graph.EncodeTerm(t.O)

	switch index {
	case SPO:
		return concatBytes(prefix, s, p, o)
	case POS:
		return concatBytes(prefix, p, o, s)
	case OSP:
		return concatBytes(prefix, o, s, p)
	default:
		panic(fmt.Sprintf("unknown index type: %v", index))
	}
}

// DecodeKey rebuilds the triple stored in an index key
func (e KeyEncoder) DecodeKey(key []byte) (graph.Triple, error) {
	if len(key) < 1 {
		return graph.Triple{}, fmt.Errorf("key too short")
	}

	index := IndexType(key[0])
	rest := key[1:]

	var parts [3]graph.Term
	for i := range parts {
		term, n, err := graph.DecodeTerm(rest)
		if err != nil {
			return graph.Triple{}, fmt.Errorf("failed to decode %v key: %w", index, err)
		}
		parts[i] = term
		rest = rest[n:]
	}
	if len(rest) != 0 {
		return graph.Triple{}, fmt.Errorf("%d trailing bytes in %v key", len(rest), index)
	}

	var s, p, o graph.Term
	switch index {
	case SPO:
		s, p, o = parts[0], parts[1], parts[2]
	case POS:
		p, o, s = parts[0], parts[1], parts[2]
	case OSP:
		o, s, p = parts[0], parts[1], parts[2]
	default:
		return graph.Triple{}, fmt.Errorf("unknown index type: %v", index)
	}

	pred, ok := p.(graph.IRI)
	if !ok {
		return graph.Triple{}, fmt.Errorf("predicate in %v key is not an IRI: %v", index, p)
	}
	return graph.Triple{S: s, P: pred, O: o}, nil
}

// EncodePrefix creates a prefix key for the bound leading parts of a pattern
// in the given index order. Scanning stops at the first unbound part.
func (e KeyEncoder) EncodePrefix(index IndexType, pat graph.Pattern) []byte {
	var pred graph.Term
	if pat.P != nil {
		pred = *pat.P
	}

	var order [3]graph.Term
	switch index {
	case SPO:
		order = [3]graph.Term{pat.S, pred, pat.O}
	case POS:
		order = [3]graph.Term{pred, pat.O, pat.S}
	case OSP:
		order = [3]graph.Term{pat.O, pat.S, pred}
	}

	parts := [][]byte{{byte(index)}}
	for _, t := range order {
		if t == nil {
			break
		}
		parts = append(parts, graph.EncodeTerm(t))
	}
	return concatBytes(parts...)
}

// namespaceKey is the key of a persisted prefix binding
func namespaceKey(prefix string) []byte {
	return concatBytes([]byte{namespacePrefix}, []byte(prefix))
}

func (i IndexType) String() string {
	switch i {
	case SPO:
		return "SPO"
	case POS:
		return "POS"
	case OSP:
		return "OSP"
	default:
		return fmt.Sprintf("index(%d)", uint8(i))
	}
}
