package store

import (
	"sync"

	"github.com/wbrown/janus-objects/graph"
)

type termSet map[graph.Term]struct{}

// MemoryStore implements Store with in-memory SPO and POS maps
type MemoryStore struct {
	mu  sync.RWMutex
	spo map[graph.Term]map[graph.IRI]termSet
	pos map[graph.IRI]map[graph.Term]termSet // predicate -> object -> subjects
	ns  *Namespaces
	n   int
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		spo: make(map[graph.Term]map[graph.IRI]termSet),
		pos: make(map[graph.IRI]map[graph.Term]termSet),
		ns:  NewNamespaces(),
	}
}

// Add inserts a triple; adding an existing triple is a no-op
func (s *MemoryStore) Add(t graph.Triple) error {
	if err := checkTriple(t); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	byPred, ok := s.spo[t.S]
	if !ok {
		byPred = make(map[graph.IRI]termSet)
		s.spo[t.S] = byPred
	}
	objs, ok := byPred[t.P]
	if !ok {
		objs = make(termSet)
		byPred[t.P] = objs
	}
	if _, exists := objs[t.O]; exists {
		return nil
	}
	objs[t.O] = struct{}{}

	byObj, ok := s.pos[t.P]
	if !ok {
		byObj = make(map[graph.Term]termSet)
		s.pos[t.P] = byObj
	}
	subs, ok := byObj[t.O]
	if !ok {
		subs = make(termSet)
		byObj[t.O] = subs
	}
	subs[t.S] = struct{}{}

	s.n++
	return nil
}

// Remove deletes every triple matching p
func (s *MemoryStore) Remove(p graph.Pattern) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.match(p) {
		s.removeTriple(t)
	}
	return nil
}

func (s *MemoryStore) removeTriple(t graph.Triple) {
	if byPred, ok := s.spo[t.S]; ok {
		if objs, ok := byPred[t.P]; ok {
			if _, ok := objs[t.O]; !ok {
				return
			}
			delete(objs, t.O)
			if len(objs) == 0 {
				delete(byPred, t.P)
			}
		}
		if len(byPred) == 0 {
			delete(s.spo, t.S)
		}
	}

	if byObj, ok := s.pos[t.P]; ok {
		if subs, ok := byObj[t.O]; ok {
			delete(subs, t.S)
			if len(subs) == 0 {
				delete(byObj, t.O)
			}
		}
		if len(byObj) == 0 {
			delete(s.pos, t.P)
		}
	}

	s.n--
}

// Triples returns every triple matching p in SPO order
func (s *MemoryStore) Triples(p graph.Pattern) ([]graph.Triple, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := s.match(p)
	graph.SortTriples(result)
	return result, nil
}

// Objects returns the objects of (subject, predicate, *) in term order
func (s *MemoryStore) Objects(subject graph.Term, p graph.IRI) ([]graph.Term, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	objs := s.spo[subject][p]
	result := make([]graph.Term, 0, len(objs))
	for o := range objs {
		result = append(result, o)
	}
	graph.SortTerms(result)
	return result, nil
}

// Contains reports whether the exact triple is present
func (s *MemoryStore) Contains(t graph.Triple) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.spo[t.S][t.P][t.O]
	return ok, nil
}

// Len returns the number of triples in the store
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.n
}

// Namespaces returns the store's prefix registry
func (s *MemoryStore) Namespaces() *Namespaces {
	return s.ns
}

// Close is a no-op for the memory store
func (s *MemoryStore) Close() error {
	return nil
}

// match collects matching triples; callers hold the lock
func (s *MemoryStore) match(p graph.Pattern) []graph.Triple {
	var result []graph.Triple

	switch chooseIndex(p) {
	case SPO:
		subjects := s.spo
		if p.S != nil {
			byPred, ok := s.spo[p.S]
			if !ok {
				return nil
			}
			subjects = map[graph.Term]map[graph.IRI]termSet{p.S: byPred}
		}
		for subj, byPred := range subjects {
			for pred, objs := range byPred {
				for obj := range objs {
					t := graph.Triple{S: subj, P: pred, O: obj}
					if p.Match(t) {
						result = append(result, t)
					}
				}
			}
		}

	case POS:
		for obj, subs := range s.pos[*p.P] {
			if p.O != nil && p.O != obj {
				continue
			}
			for subj := range subs {
				result = append(result, graph.Triple{S: subj, P: *p.P, O: obj})
			}
		}

	case OSP:
		// No object-first index; scan predicates and pick the object bucket
		for pred, byObj := range s.pos {
			for subj := range byObj[p.O] {
				result = append(result, graph.Triple{S: subj, P: pred, O: p.O})
			}
		}
	}

	return result
}
