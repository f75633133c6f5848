package graph

import (
	"encoding/binary"
	"fmt"
)

// Term encodings are a 1-byte kind followed by the kind's fields. Each
// variable-length field carries a 4-byte big-endian length so that encoded
// terms can be concatenated into index keys and split apart again.
//
//	IRI:       kind | len | iri
//	BlankNode: kind | len | id
//	Literal:   kind | len | lexical | len | datatype | len | lang

// EncodeTerm serializes a term to bytes
func EncodeTerm(t Term) []byte {
	switch v := t.(type) {
	case IRI:
		return appendField([]byte{byte(KindIRI)}, string(v))
	case BlankNode:
		return appendField([]byte{byte(KindBlank)}, v.ID)
	case Literal:
		buf := []byte{byte(KindLiteral)}
		buf = appendField(buf, v.Lexical)
		buf = appendField(buf, string(v.Datatype))
		return appendField(buf, v.Lang)
	default:
		panic(fmt.Sprintf("cannot encode term type: %T", t))
	}
}

// DecodeTerm deserializes one term from the front of data and returns the
// number of bytes consumed
func DecodeTerm(data []byte) (Term, int, error) {
	if len(data) < 1 {
		return nil, 0, fmt.Errorf("term data too short")
	}

	kind := TermKind(data[0])
	off := 1

	switch kind {
	case KindIRI:
		s, n, err := readField(data[off:])
		if err != nil {
			return nil, 0, fmt.Errorf("iri: %w", err)
		}
		return IRI(s), off + n, nil

	case KindBlank:
		s, n, err := readField(data[off:])
		if err != nil {
			return nil, 0, fmt.Errorf("blank node: %w", err)
		}
		return BlankNode{ID: s}, off + n, nil

	case KindLiteral:
		var fields [3]string
		for i := range fields {
			s, n, err := readField(data[off:])
			if err != nil {
				return nil, 0, fmt.Errorf("literal: %w", err)
			}
			fields[i] = s
			off += n
		}
		return Literal{Lexical: fields[0], Datatype: IRI(fields[1]), Lang: fields[2]}, off, nil

	default:
		return nil, 0, fmt.Errorf("unknown term kind: %d", kind)
	}
}

func appendField(buf []byte, s string) []byte {
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(s)))
	buf = append(buf, size[:]...)
	return append(buf, s...)
}

func readField(data []byte) (string, int, error) {
	if len(data) < 4 {
		return "", 0, fmt.Errorf("field length truncated")
	}
	size := int(binary.BigEndian.Uint32(data[:4]))
	if len(data) < 4+size {
		return "", 0, fmt.Errorf("field truncated: expected %d bytes, got %d", size, len(data)-4)
	}
	return string(data[4 : 4+size]), 4 + size, nil
}
