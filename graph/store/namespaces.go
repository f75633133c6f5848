package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/wbrown/janus-objects/graph/vocab"
)

// DefaultPrefixes are bound in every new registry. A store may rebind them.
var DefaultPrefixes = map[string]string{
	"rdf":  vocab.RDFNamespace,
	"rdfs": vocab.RDFSNamespace,
	"owl":  vocab.OWLNamespace,
	"xsd":  vocab.XSDNamespace,
}

// Namespaces maps short prefixes to namespace IRIs
type Namespaces struct {
	mu       sync.RWMutex
	prefixes map[string]string
	persist  func(prefix, uri string) error
}

// NewNamespaces creates a registry holding the DefaultPrefixes
func NewNamespaces() *Namespaces {
	n := &Namespaces{prefixes: make(map[string]string, len(DefaultPrefixes))}
	for prefix, uri := range DefaultPrefixes {
		n.prefixes[prefix] = uri
	}
	return n
}

// Bind registers or replaces a prefix
func (n *Namespaces) Bind(prefix, uri string) error {
	if prefix == "" {
		return fmt.Errorf("empty namespace prefix")
	}
	if strings.Contains(prefix, "_") {
		// An underscore would make prefix_local names ambiguous
		return fmt.Errorf("namespace prefix %q contains '_'", prefix)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.persist != nil {
		if err := n.persist(prefix, uri); err != nil {
			return fmt.Errorf("failed to persist namespace %s: %w", prefix, err)
		}
	}
	n.prefixes[prefix] = uri
	return nil
}

// Lookup returns the namespace IRI bound to prefix
func (n *Namespaces) Lookup(prefix string) (string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	uri, ok := n.prefixes[prefix]
	return uri, ok
}

// All returns the bound prefixes in sorted order
func (n *Namespaces) All() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	prefixes := make([]string, 0, len(n.prefixes))
	for p := range n.prefixes {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	return prefixes
}

// Shorten finds the prefix with the longest namespace IRI that starts iri.
// Ties between equal-length namespaces go to the alphabetically first prefix.
func (n *Namespaces) Shorten(iri string) (prefix, local string, ok bool) {
	best := -1
	for _, p := range n.All() {
		uri, _ := n.Lookup(p)
		if uri != "" && strings.HasPrefix(iri, uri) && len(uri) > best {
			prefix, local, best = p, iri[len(uri):], len(uri)
		}
	}
	return prefix, local, best >= 0
}

// load installs a prefix without persisting it
func (n *Namespaces) load(prefix, uri string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.prefixes[prefix] = uri
}
