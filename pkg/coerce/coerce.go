// Package coerce bridges the two text representations the bridged systems
// disagree on: one side treats repository data as text, the other as raw
// bytes. It provides a small tagged value tree and a recursive normalizer
// that rewrites every string-like leaf to a single canonical representation,
// using UTF-8 as the interchange encoding.
package coerce

import (
	"unicode/utf8"

	"hgbridge/pkg/serrors"
)

// Kind tags the variants of a Value.
type Kind int

const (
	// KindStr is the textual scalar variant.
	KindStr Kind = iota
	// KindBytes is the encoded-byte scalar variant.
	KindBytes
	// KindMap is an insertion-ordered mapping with unique keys.
	KindMap
	// KindTuple is a fixed-arity ordered sequence.
	KindTuple
	// KindList is a variable-length ordered sequence.
	KindList
	// KindOpaque is any value the normalizer does not own (numbers,
	// booleans, host-system handles). It always passes through unchanged.
	KindOpaque
)

// Value is the sealed interface over the variants the normalizer walks.
// Exactly the types in this package implement it.
type Value interface {
	Kind() Kind
}

// Str is a textual scalar.
type Str string

// Kind implements Value.
func (Str) Kind() Kind { return KindStr }

// Bytes is an encoded-byte scalar.
type Bytes []byte

// Kind implements Value.
func (Bytes) Kind() Kind { return KindBytes }

// Entry is a single key/value pair of a Map.
type Entry struct {
	Key Value
	Val Value
}

// Map is an insertion-ordered mapping with unique keys. Keys are unique by
// scalar equality; insertion order is preserved but carries no meaning.
type Map []Entry

// Kind implements Value.
func (Map) Kind() Kind { return KindMap }

// Tuple is a fixed-arity ordered sequence.
type Tuple []Value

// Kind implements Value.
func (Tuple) Kind() Kind { return KindTuple }

// List is a variable-length ordered sequence.
type List []Value

// Kind implements Value.
func (List) Kind() Kind { return KindList }

// Opaque wraps a value of a kind the normalizer does not own.
type Opaque struct{ V any }

// Kind implements Value.
func (Opaque) Kind() Kind { return KindOpaque }

// Get returns the value stored under key, matching by scalar equality.
// A Str key and a Bytes key with the same content are distinct.
func (m Map) Get(key Value) (Value, bool) {
	for _, e := range m {
		if scalarEqual(e.Key, key) {
			return e.Val, true
		}
	}

	return nil, false
}

// Set returns m with val stored under key: an existing entry is replaced in
// place, otherwise the pair is appended, preserving insertion order.
func (m Map) Set(key, val Value) Map {
	for i, e := range m {
		if scalarEqual(e.Key, key) {
			m[i].Val = val

			return m
		}
	}

	return append(m, Entry{Key: key, Val: val})
}

// scalarEqual reports whether two values are equal scalars of the same kind.
// Composite values never compare equal; map keys are scalars in practice.
func scalarEqual(a, b Value) bool {
	switch av := a.(type) {
	case Str:
		bv, ok := b.(Str)

		return ok && av == bv
	case Bytes:
		bv, ok := b.(Bytes)

		return ok && string(av) == string(bv)
	default:
		return false
	}
}

// Normalize recursively rewrites v so that every scalar leaf of the from
// kind is converted to the to kind. Containers are rebuilt with the same
// shape (kind, element count, key set); map keys are normalized alongside
// values, with later entries winning should normalization make keys collide.
// Scalars of other kinds and opaque values pass through unchanged.
//
// from and to must be scalar kinds (KindStr or KindBytes). Decoding bytes
// that are not valid UTF-8 fails with serrors.ErrEncoding.
func Normalize(v Value, from, to Kind) (Value, error) {
	if !isScalarKind(from) || !isScalarKind(to) {
		return nil, serrors.With(serrors.ErrBadInput, "normalize kinds must be scalar, got %d -> %d", from, to)
	}

	switch val := v.(type) {
	case Str, Bytes:
		if v.Kind() != from {
			return v, nil
		}

		return convertScalar(v, to)
	case Map:
		out := make(Map, 0, len(val))
		for _, e := range val {
			key, err := Normalize(e.Key, from, to)
			if err != nil {
				return nil, err
			}
			value, err := Normalize(e.Val, from, to)
			if err != nil {
				return nil, err
			}
			out = out.Set(key, value)
		}

		return out, nil
	case Tuple:
		out := make(Tuple, len(val))
		if err := normalizeSeq(out, val, from, to); err != nil {
			return nil, err
		}

		return out, nil
	case List:
		out := make(List, len(val))
		if err := normalizeSeq(out, val, from, to); err != nil {
			return nil, err
		}

		return out, nil
	default:
		return v, nil
	}
}

// normalizeSeq fills dst with the normalized elements of src.
func normalizeSeq(dst, src []Value, from, to Kind) error {
	for i, e := range src {
		n, err := Normalize(e, from, to)
		if err != nil {
			return err
		}
		dst[i] = n
	}

	return nil
}

// EncodeScalar converts a textual scalar to its encoded-byte form. Values
// that are already encoded, and values of any other kind, are returned
// unchanged, which makes the operation idempotent.
func EncodeScalar(v Value) Value {
	if s, ok := v.(Str); ok {
		return Bytes(s)
	}

	return v
}

// DecodeScalar converts an encoded-byte scalar to its textual form. Values
// that are already text, and values of any other kind, are returned
// unchanged, which makes the operation idempotent. Bytes that are not valid
// UTF-8 fail with serrors.ErrEncoding.
func DecodeScalar(v Value) (Value, error) {
	b, ok := v.(Bytes)
	if !ok {
		return v, nil
	}

	return convertScalar(b, KindStr)
}

// convertScalar converts a scalar value to the target scalar kind.
func convertScalar(v Value, to Kind) (Value, error) {
	switch to {
	case KindBytes:
		if s, ok := v.(Str); ok {
			return Bytes(s), nil
		}

		return v, nil
	default: // KindStr
		b, ok := v.(Bytes)
		if !ok {
			return v, nil
		}
		if !utf8.Valid(b) {
			return nil, serrors.With(serrors.ErrEncoding, "invalid UTF-8 sequence in %q", b)
		}

		return Str(b), nil
	}
}

// isScalarKind reports whether k names one of the two scalar variants.
func isScalarKind(k Kind) bool {
	return k == KindStr || k == KindBytes
}
