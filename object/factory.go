package object

import (
	"fmt"
	"sort"

	"github.com/wbrown/janus-objects/graph"
	"github.com/wbrown/janus-objects/graph/store"
)

// Option configures a Factory
type Option func(*Factory)

// WithSchema reads property and class declarations from schema instead of
// the data store
func WithSchema(schema store.Store) Option {
	return func(f *Factory) {
		f.schema = schema
	}
}

// WithAliases seeds the alias table
func WithAliases(aliases map[string]string) Option {
	return func(f *Factory) {
		for name, iri := range aliases {
			f.aliases.Register(name, iri)
		}
	}
}

// WithLanguage sets the language tag given to untyped string literals
func WithLanguage(lang string) Option {
	return func(f *Factory) {
		f.lang = lang
	}
}

// Factory creates entities bound to one data store, one schema store and
// one alias table
type Factory struct {
	data    store.Store
	schema  store.Store
	aliases *Aliases
	lang    string
}

// NewFactory creates a factory over data. The schema defaults to the data
// store itself.
func NewFactory(data store.Store, opts ...Option) *Factory {
	f := &Factory{
		data:    data,
		schema:  data,
		aliases: NewAliases(nil),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Entity resolves name and wraps the resulting node
func (f *Factory) Entity(name Name) (*Entity, error) {
	id, err := f.Resolver().Resolve(name)
	if err != nil {
		return nil, err
	}
	if !graph.IsNode(id) {
		return nil, fmt.Errorf("%w: entity identifier %s is not an IRI or blank node", ErrInvalidAssignment, id)
	}
	return f.Wrap(id), nil
}

// Create resolves name and sets each of props on the new entity through
// Entity.Set, in name order. A Collection on a multi-valued attribute adds
// each member; anything else replaces a single value.
func (f *Factory) Create(name Name, props map[string]Assignment) (*Entity, error) {
	e, err := f.Entity(name)
	if err != nil {
		return nil, err
	}

	attrs := make([]string, 0, len(props))
	for attr := range props {
		attrs = append(attrs, attr)
	}
	sort.Strings(attrs)

	for _, attr := range attrs {
		if err := e.Set(attr, props[attr]); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Named is shorthand for Entity(NameString(name))
func (f *Factory) Named(name string) (*Entity, error) {
	return f.Entity(NameString(name))
}

// MustNamed is like Named but panics on error
func (f *Factory) MustNamed(name string) *Entity {
	e, err := f.Named(name)
	if err != nil {
		panic(err)
	}
	return e
}

// New creates an entity on a fresh blank node
func (f *Factory) New() *Entity {
	return f.Wrap(graph.NewBlankNode())
}

// Wrap binds an existing term without resolution
func (f *Factory) Wrap(id graph.Term) *Entity {
	return &Entity{id: id, f: f}
}

// Alias registers name as an alias for iri in the shared table
func (f *Factory) Alias(name, iri string) {
	f.aliases.Register(name, iri)
}

// Aliases returns the alias table shared by this factory's entities
func (f *Factory) Aliases() *Aliases {
	return f.aliases
}

// Data returns the data store
func (f *Factory) Data() store.Store {
	return f.data
}

// Schema returns the schema store
func (f *Factory) Schema() store.Store {
	return f.schema
}

// Resolver returns a name resolver over the current aliases and the data
// store's namespaces
func (f *Factory) Resolver() Resolver {
	return NewResolver(f.aliases, f.data.Namespaces())
}

// Oracle returns the cardinality oracle for this factory's stores
func (f *Factory) Oracle() Oracle {
	return NewOracle(f.data, f.schema)
}
