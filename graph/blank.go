package graph

import (
	"strings"

	"github.com/google/uuid"
)

// NewBlankNode allocates a blank node with a fresh identifier. Identifiers
// are random UUIDs and stay unique across processes sharing one store.
func NewBlankNode() BlankNode {
	return BlankNode{ID: "b" + strings.ReplaceAll(uuid.NewString(), "-", "")}
}
