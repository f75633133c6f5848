// Package object binds graph nodes to Go values so that triples can be read
// and written as entity attributes.
//
// A Factory wraps a data store, an optional schema store and an alias table.
// Entities created from it resolve attribute names to predicates, either
// through the alias table or by splitting "prefix_local" against the
// store's namespaces:
//
//	f := object.NewFactory(st)
//	me := f.MustNamed("ex_me")
//	names, _ := me.Values("foaf_name")
//	names.Add("Alice")
//
// Whether an attribute holds one value or many is decided from the schema
// on every access: owl:FunctionalProperty declarations and owl:Restriction
// superclasses with a cardinality of 1 make it single-valued, anything else
// is multi-valued. Single-valued attributes read and write native values;
// multi-valued ones are exposed as a *Values view.
//
// Values convert to and from literals by datatype, to rdf:List chains and
// rdf:Seq containers when the predicate's range says so, and to nested
// entities for other nodes. Adding an entity that lives in a different
// store copies its reachable subgraph into this one.
//
// Nothing here locks or caches; callers sharing a store across goroutines
// must serialize access themselves.
package object
