package object

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wbrown/janus-objects/graph"
	"github.com/wbrown/janus-objects/graph/vocab"
)

var integerTypes = map[graph.IRI]bool{
	vocab.XSDInteger:            true,
	vocab.XSDInt:                true,
	vocab.XSDLong:               true,
	vocab.XSDShort:              true,
	vocab.XSDByte:               true,
	vocab.XSDNonNegativeInteger: true,
	vocab.XSDPositiveInteger:    true,
	vocab.XSDNegativeInteger:    true,
	vocab.XSDNonPositiveInteger: true,
	vocab.XSDUnsignedInt:        true,
}

var floatTypes = map[graph.IRI]bool{
	vocab.XSDDecimal: true,
	vocab.XSDDouble:  true,
	vocab.XSDFloat:   true,
}

// decodeLiteral turns a literal into a Go value according to its datatype.
// Literals with no datatype, a language tag or an unknown datatype decode
// to their lexical string.
func decodeLiteral(l graph.Literal) (any, error) {
	lex := strings.TrimSpace(l.Lexical)

	switch {
	case integerTypes[l.Datatype]:
		n, err := strconv.ParseInt(lex, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s is not a valid integer", ErrConversion, l)
		}
		return n, nil

	case l.Datatype == vocab.XSDUnsignedLong:
		n, err := strconv.ParseUint(lex, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s is not a valid unsigned integer", ErrConversion, l)
		}
		return n, nil

	case floatTypes[l.Datatype]:
		f, err := strconv.ParseFloat(lex, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s is not a valid number", ErrConversion, l)
		}
		return f, nil

	case l.Datatype == vocab.XSDBoolean:
		switch lex {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
		return nil, fmt.Errorf("%w: %s is not a valid boolean", ErrConversion, l)

	case l.Datatype == vocab.XSDDateTime:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"} {
			if t, err := time.Parse(layout, lex); err == nil {
				return t, nil
			}
		}
		return nil, fmt.Errorf("%w: %s is not a valid dateTime", ErrConversion, l)
	}

	return l.Lexical, nil
}

// lexicalForm renders a Go scalar and reports its natural XSD datatype.
// Strings have no natural datatype and stay untyped.
func lexicalForm(v any) (string, graph.IRI, error) {
	switch val := v.(type) {
	case string:
		return val, "", nil
	case bool:
		return strconv.FormatBool(val), vocab.XSDBoolean, nil
	case int:
		return strconv.FormatInt(int64(val), 10), vocab.XSDInteger, nil
	case int8:
		return strconv.FormatInt(int64(val), 10), vocab.XSDInteger, nil
	case int16:
		return strconv.FormatInt(int64(val), 10), vocab.XSDInteger, nil
	case int32:
		return strconv.FormatInt(int64(val), 10), vocab.XSDInteger, nil
	case int64:
		return strconv.FormatInt(val, 10), vocab.XSDInteger, nil
	case uint:
		return strconv.FormatUint(uint64(val), 10), vocab.XSDInteger, nil
	case uint8:
		return strconv.FormatUint(uint64(val), 10), vocab.XSDInteger, nil
	case uint16:
		return strconv.FormatUint(uint64(val), 10), vocab.XSDInteger, nil
	case uint32:
		return strconv.FormatUint(uint64(val), 10), vocab.XSDInteger, nil
	case uint64:
		return strconv.FormatUint(val, 10), vocab.XSDUnsignedLong, nil
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32), vocab.XSDDouble, nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), vocab.XSDDouble, nil
	case time.Time:
		return val.Format(time.RFC3339Nano), vocab.XSDDateTime, nil
	default:
		return "", "", fmt.Errorf("%w: unsupported value type %T", ErrInvalidAssignment, v)
	}
}

// encodeLiteral builds the literal for a scalar. The first inferred type
// wins over the value's natural datatype; a value whose lexical form does
// not parse under that type is rejected. The language tag only applies to
// literals left without a datatype.
func encodeLiteral(types []graph.Term, v any, lang string) (graph.Literal, error) {
	lexical, datatype, err := lexicalForm(v)
	if err != nil {
		return graph.Literal{}, err
	}

	if len(types) > 0 {
		if iri, ok := types[0].(graph.IRI); ok {
			datatype = iri
		}
	}

	lit := graph.Literal{Lexical: lexical, Datatype: datatype}
	if datatype == "" {
		lit.Lang = lang
		return lit, nil
	}

	if _, err := decodeLiteral(lit); err != nil {
		return graph.Literal{}, fmt.Errorf("%w: %v does not fit datatype %s", ErrInvalidAssignment, v, datatype)
	}
	return lit, nil
}
