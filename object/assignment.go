package object

type assignKind uint8

const (
	assignScalar assignKind = iota
	assignCollection
	assignEntity
)

// Assignment is the value given to Entity.Set. The caller states whether
// it is a single value, a collection of values or a reference to another
// entity.
type Assignment struct {
	kind   assignKind
	scalar any
	items  []any
	entity *Entity
}

// Scalar assigns one plain value (string, number, bool, time or term)
func Scalar(v any) Assignment {
	return Assignment{kind: assignScalar, scalar: v}
}

// Collection assigns a group of values. On a multi-valued attribute each
// member is added; on a single-valued attribute the members are stored as
// one rdf:List or rdf:Seq, depending on the attribute's range.
func Collection(vs ...any) Assignment {
	items := make([]any, len(vs))
	copy(items, vs)
	return Assignment{kind: assignCollection, items: items}
}

// EntityRef assigns a reference to another entity
func EntityRef(e *Entity) Assignment {
	return Assignment{kind: assignEntity, entity: e}
}

// value returns the Go value handed to the converter
func (a Assignment) value() any {
	switch a.kind {
	case assignCollection:
		return a.items
	case assignEntity:
		return a.entity
	default:
		return a.scalar
	}
}
