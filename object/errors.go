package object

import (
	"errors"
	"fmt"

	"github.com/wbrown/janus-objects/graph"
)

var (
	// ErrUnresolvableName indicates an attribute name with no alias or
	// namespace mapping
	ErrUnresolvableName = errors.New("object: unresolvable attribute name")
	// ErrUnresolvableTerm indicates a term with no alias or namespace
	// mapping back to an attribute name
	ErrUnresolvableTerm = errors.New("object: no attribute name for term")
	// ErrMissingValue indicates a single-valued attribute with no value
	ErrMissingValue = errors.New("object: missing single value")
	// ErrInvalidAssignment indicates a value that cannot be stored under
	// the target attribute
	ErrInvalidAssignment = errors.New("object: invalid assignment")
	// ErrNotPresent indicates a strict removal of an absent value
	ErrNotPresent = errors.New("object: value not present")
	// ErrConversion indicates a term with no native representation
	ErrConversion = errors.New("object: cannot convert term")
	// ErrStructural indicates a malformed list or sequence chain
	ErrStructural = errors.New("object: malformed collection structure")
)

// AttributeError records which attribute of which entity an operation
// failed on
type AttributeError struct {
	Op      string     // "get", "set" or "delete"
	Subject graph.Term // Entity identifier
	Name    string     // Attribute name as given by the caller
	Err     error      // Underlying error
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("%s %s.%s: %v", e.Op, e.Subject, e.Name, e.Err)
}

func (e *AttributeError) Unwrap() error {
	return e.Err
}
