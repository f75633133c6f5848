package store

import (
	"fmt"

	"github.com/wbrown/janus-objects/graph"
)

// concatBytes efficiently concatenates byte slices
func concatBytes(parts ...[]byte) []byte {
	size := 0
	for _, p := range parts {
		size += len(p)
	}

	result := make([]byte, size)
	offset := 0
	for _, p := range parts {
		copy(result[offset:], p)
		offset += len(p)
	}

	return result
}

// checkTriple rejects triples that cannot be stored
func checkTriple(t graph.Triple) error {
	if t.S == nil || !graph.IsNode(t.S) {
		return fmt.Errorf("invalid subject %v: must be an IRI or blank node", t.S)
	}
	if t.P == "" {
		return fmt.Errorf("empty predicate")
	}
	if t.O == nil {
		return fmt.Errorf("nil object")
	}
	return nil
}
