package store

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/wbrown/janus-objects/graph"
)

// BadgerOptions configures a BadgerStore
type BadgerOptions struct {
	// InMemory keeps all data in memory; Path is ignored
	InMemory bool
	// SyncWrites fsyncs every write transaction
	SyncWrites bool
	// BlockCacheSize in bytes
	BlockCacheSize int64
	// MemTableSize in bytes; zero keeps badger's default. It also bounds
	// the size of a single write transaction.
	MemTableSize int64
}

// DefaultBadgerOptions returns options suited to small, read-mostly graphs
func DefaultBadgerOptions() BadgerOptions {
	return BadgerOptions{
		BlockCacheSize: 64 << 20,
	}
}

// BadgerStore implements Store using BadgerDB.
// Every triple is written under three keys (SPO, POS, OSP) with an empty
// value; the triple is recovered from the key itself.
type BadgerStore struct {
	db      *badger.DB
	encoder KeyEncoder
	ns      *Namespaces
}

// NewBadgerStore opens (or creates) a BadgerDB-backed store at path
func NewBadgerStore(path string, options BadgerOptions) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Disable BadgerDB logs
	opts.SyncWrites = options.SyncWrites
	if options.BlockCacheSize > 0 {
		opts.BlockCacheSize = options.BlockCacheSize
	}
	if options.MemTableSize > 0 {
		opts.MemTableSize = options.MemTableSize
	}
	opts.ValueThreshold = 1 << 10 // 1KB - values are empty, keep them in the LSM tree
	if options.InMemory {
		opts = opts.WithInMemory(true).WithDir("").WithValueDir("")
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}

	s := &BadgerStore{
		db: db,
		ns: NewNamespaces(),
	}
	if err := s.loadNamespaces(); err != nil {
		db.Close()
		return nil, err
	}
	s.ns.persist = s.saveNamespace

	return s, nil
}

// Add writes a triple to all indices
func (s *BadgerStore) Add(t graph.Triple) error {
	if err := checkTriple(t); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return s.addTriple(txn, t)
	})
}

// addTriple writes a single triple to all indices
func (s *BadgerStore) addTriple(txn *badger.Txn, t graph.Triple) error {
	for _, idx := range []IndexType{SPO, POS, OSP} {
		key := s.encoder.EncodeKey(idx, t)
		if err := txn.Set(key, nil); err != nil {
			return fmt.Errorf("failed to write to %v index: %w", idx, err)
		}
	}
	return nil
}

// Remove deletes every triple matching p. Matches are read in one
// transaction and deleted through a write batch, so a wide pattern is not
// bound by the transaction size limit; the delete is not atomic as a whole.
func (s *BadgerStore) Remove(p graph.Pattern) error {
	var matches []graph.Triple
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		matches, err = s.scan(txn, p)
		return err
	})
	if err != nil || len(matches) == 0 {
		return err
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, t := range matches {
		if err := s.removeTriple(wb, t); err != nil {
			return err
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("failed to flush removal: %w", err)
	}
	return nil
}

// removeTriple queues the deletion of a single triple from all indices
func (s *BadgerStore) removeTriple(wb *badger.WriteBatch, t graph.Triple) error {
	for _, idx := range []IndexType{SPO, POS, OSP} {
		key := s.encoder.EncodeKey(idx, t)
		if err := wb.Delete(key); err != nil {
			return fmt.Errorf("failed to delete from %v index: %w", idx, err)
		}
	}
	return nil
}

// Triples returns every triple matching p
func (s *BadgerStore) Triples(p graph.Pattern) ([]graph.Triple, error) {
	var result []graph.Triple
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		result, err = s.scan(txn, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	graph.SortTriples(result)
	return result, nil
}

// Objects returns the objects of (subject, predicate, *)
func (s *BadgerStore) Objects(subject graph.Term, p graph.IRI) ([]graph.Term, error) {
	triples, err := s.Triples(graph.SubjectPredicate(subject, p))
	if err != nil {
		return nil, err
	}
	result := make([]graph.Term, len(triples))
	for i, t := range triples {
		result[i] = t.O
	}
	return result, nil
}

// Contains reports whether the exact triple is present
func (s *BadgerStore) Contains(t graph.Triple) (bool, error) {
	if checkTriple(t) != nil {
		return false, nil
	}

	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(s.encoder.EncodeKey(SPO, t))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}

// Namespaces returns the persistent prefix registry
func (s *BadgerStore) Namespaces() *Namespaces {
	return s.ns
}

// Close closes the store
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// scan iterates the best index for p and filters on the parts that are not
// part of the key prefix
func (s *BadgerStore) scan(txn *badger.Txn, p graph.Pattern) ([]graph.Triple, error) {
	index := chooseIndex(p)
	prefix := s.encoder.EncodePrefix(index, p)

	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false // keys carry the whole triple
	opts.Prefix = prefix

	it := txn.NewIterator(opts)
	defer it.Close()

	var result []graph.Triple
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		t, err := s.encoder.DecodeKey(it.Item().KeyCopy(nil))
		if err != nil {
			return nil, err
		}
		if p.Match(t) {
			result = append(result, t)
		}
	}
	return result, nil
}

func (s *BadgerStore) loadNamespaces() error {
	return s.db.View(func(txn *badger.Txn) error {
		prefix := []byte{namespacePrefix}
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix, PrefetchValues: true, PrefetchSize: 100})
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			uri, err := item.ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("failed to read namespace: %w", err)
			}
			s.ns.load(string(item.Key()[1:]), string(uri))
		}
		return nil
	})
}

func (s *BadgerStore) saveNamespace(prefix, uri string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(namespaceKey(prefix), []byte(uri))
	})
}
