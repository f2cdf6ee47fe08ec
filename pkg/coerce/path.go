package coerce

import (
	"bytes"
	"fmt"
	"path/filepath"
)

// ToBytes coerces an arbitrary Go value to its encoded-byte form. Byte
// slices pass through; anything else is formatted as text first.
func ToBytes(v any) []byte {
	switch t := v.(type) {
	case []byte:
		return t
	case Bytes:
		return t
	case string:
		return []byte(t)
	case Str:
		return []byte(t)
	default:
		return fmt.Appendf(nil, "%v", t)
	}
}

// ToString coerces an arbitrary Go value to its textual form. Byte slices
// must be valid UTF-8; anything else is formatted as text.
func ToString(v any) (string, error) {
	switch t := v.(type) {
	case []byte:
		s, err := DecodeScalar(Bytes(t))
		if err != nil {
			return "", err
		}

		return string(s.(Str)), nil
	case Bytes:
		return ToString([]byte(t))
	case string:
		return t, nil
	case Str:
		return string(t), nil
	default:
		return fmt.Sprintf("%v", t), nil
	}
}

// JoinPath joins path segments after coercing every segment to the
// encoded-byte form, so all segments reach the underlying path-join
// primitive in a single consistent representation. The bridged systems
// disagree on whether filesystem paths are bytes or text; this keeps the
// mixture from ever hitting the filesystem layer.
func JoinPath(first any, rest ...any) []byte {
	segments := make([]string, 0, len(rest)+1)
	segments = append(segments, string(ToBytes(first)))
	for _, r := range rest {
		segments = append(segments, string(ToBytes(r)))
	}

	return []byte(filepath.Join(segments...))
}

// TrimLeft removes leading characters contained in cutset from v, with both
// arguments coerced to the encoded-byte form first.
func TrimLeft(v, cutset any) []byte {
	return bytes.TrimLeft(ToBytes(v), string(ToBytes(cutset)))
}
