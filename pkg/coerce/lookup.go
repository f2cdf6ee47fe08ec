package coerce

import (
	"hgbridge/pkg/serrors"
)

// Lookup returns the value stored in m under key. When the exact key
// misses and key is textual, the encoded form of the key is tried as well;
// most maps crossing the bridge are keyed by bytes while callers tend to
// hold text. A key present under neither form fails with
// serrors.ErrNotFound. An entry that exists is returned as-is, even when
// its value is an empty scalar.
func Lookup(m Map, key Value) (Value, error) {
	if v, ok := m.Get(key); ok {
		return v, nil
	}

	if s, ok := key.(Str); ok {
		if v, ok := m.Get(Bytes(s)); ok {
			return v, nil
		}
	}

	return nil, serrors.With(serrors.ErrNotFound, "%q is not in the map", ToBytes(key))
}
