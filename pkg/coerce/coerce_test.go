package coerce_test

import (
	"path/filepath"
	"testing"

	"hgbridge/pkg/coerce"
	"hgbridge/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestNormalizeScalars(t *testing.T) {
	got, err := coerce.Normalize(coerce.Str("hello"), coerce.KindStr, coerce.KindBytes)
	require.NoError(t, err)
	require.Equal(t, coerce.Bytes("hello"), got)

	got, err = coerce.Normalize(coerce.Bytes("world"), coerce.KindBytes, coerce.KindStr)
	require.NoError(t, err)
	require.Equal(t, coerce.Str("world"), got)

	// a scalar of the other kind passes through untouched
	got, err = coerce.Normalize(coerce.Bytes("asis"), coerce.KindStr, coerce.KindBytes)
	require.NoError(t, err)
	require.Equal(t, coerce.Bytes("asis"), got)
}

func TestNormalizeInvalidUTF8(t *testing.T) {
	_, err := coerce.Normalize(coerce.Bytes{0xff, 0xfe}, coerce.KindBytes, coerce.KindStr)
	require.ErrorIs(t, err, serrors.ErrEncoding)

	_, err = coerce.DecodeScalar(coerce.Bytes{0xc3, 0x28})
	require.ErrorIs(t, err, serrors.ErrEncoding)
}

func TestNormalizeRejectsContainerKinds(t *testing.T) {
	_, err := coerce.Normalize(coerce.Str("x"), coerce.KindMap, coerce.KindBytes)
	require.ErrorIs(t, err, serrors.ErrBadInput)
}

func TestNormalizeTree(t *testing.T) {
	tree := coerce.Map{
		{Key: coerce.Str("name"), Val: coerce.Str("origin")},
		{Key: coerce.Str("refs"), Val: coerce.List{
			coerce.Str("refs/heads/main"),
			coerce.Bytes("refs/heads/dev"),
			coerce.Opaque{V: 42},
		}},
		{Key: coerce.Str("pair"), Val: coerce.Tuple{
			coerce.Str("a"),
			coerce.Str("b"),
		}},
	}

	got, err := coerce.Normalize(tree, coerce.KindStr, coerce.KindBytes)
	require.NoError(t, err)

	want := coerce.Map{
		{Key: coerce.Bytes("name"), Val: coerce.Bytes("origin")},
		{Key: coerce.Bytes("refs"), Val: coerce.List{
			coerce.Bytes("refs/heads/main"),
			coerce.Bytes("refs/heads/dev"),
			coerce.Opaque{V: 42},
		}},
		{Key: coerce.Bytes("pair"), Val: coerce.Tuple{
			coerce.Bytes("a"),
			coerce.Bytes("b"),
		}},
	}
	require.Equal(t, want, got)

	// reversing the direction restores the original shape; the leaf that was
	// already bytes stays text after the round trip, everything else matches
	back, err := coerce.Normalize(got, coerce.KindBytes, coerce.KindStr)
	require.NoError(t, err)

	wantBack := coerce.Map{
		{Key: coerce.Str("name"), Val: coerce.Str("origin")},
		{Key: coerce.Str("refs"), Val: coerce.List{
			coerce.Str("refs/heads/main"),
			coerce.Str("refs/heads/dev"),
			coerce.Opaque{V: 42},
		}},
		{Key: coerce.Str("pair"), Val: coerce.Tuple{
			coerce.Str("a"),
			coerce.Str("b"),
		}},
	}
	require.Equal(t, wantBack, back)
}

func TestNormalizeMapKeyCollision(t *testing.T) {
	// a text key and a byte key with the same content collide once
	// normalized; the later entry wins, matching plain map semantics
	tree := coerce.Map{
		{Key: coerce.Str("k"), Val: coerce.Str("first")},
		{Key: coerce.Bytes("k"), Val: coerce.Str("second")},
	}

	got, err := coerce.Normalize(tree, coerce.KindStr, coerce.KindBytes)
	require.NoError(t, err)
	require.Len(t, got, 1)

	v, ok := got.(coerce.Map).Get(coerce.Bytes("k"))
	require.True(t, ok)
	require.Equal(t, coerce.Bytes("second"), v)
}

func TestScalarWrappersIdempotent(t *testing.T) {
	for _, x := range []string{"", "plain", "ünïcode", "with spaces"} {
		encoded := coerce.EncodeScalar(coerce.Str(x))
		require.Equal(t, coerce.Bytes(x), encoded)
		require.Equal(t, encoded, coerce.EncodeScalar(encoded), "EncodeScalar must be idempotent")

		once, err := coerce.DecodeScalar(encoded)
		require.NoError(t, err)
		twice, err := coerce.DecodeScalar(once)
		require.NoError(t, err)
		require.Equal(t, once, twice, "DecodeScalar must be idempotent")
		require.Equal(t, coerce.Str(x), twice)
	}
}

func TestMapSetGet(t *testing.T) {
	var m coerce.Map
	m = m.Set(coerce.Str("a"), coerce.Str("1"))
	m = m.Set(coerce.Bytes("a"), coerce.Str("2")) // distinct key, different kind
	m = m.Set(coerce.Str("a"), coerce.Str("3"))   // replaces the first entry

	require.Len(t, m, 2)

	v, ok := m.Get(coerce.Str("a"))
	require.True(t, ok)
	require.Equal(t, coerce.Str("3"), v)

	v, ok = m.Get(coerce.Bytes("a"))
	require.True(t, ok)
	require.Equal(t, coerce.Str("2"), v)
}

func TestLookup(t *testing.T) {
	m := coerce.Map{
		{Key: coerce.Bytes("encoded"), Val: coerce.Str("v1")},
		{Key: coerce.Str("text"), Val: coerce.Str("v2")},
		{Key: coerce.Bytes("empty"), Val: coerce.Str("")},
	}

	// exact hit
	v, err := coerce.Lookup(m, coerce.Str("text"))
	require.NoError(t, err)
	require.Equal(t, coerce.Str("v2"), v)

	// text key falls back to its encoded form
	v, err = coerce.Lookup(m, coerce.Str("encoded"))
	require.NoError(t, err)
	require.Equal(t, coerce.Str("v1"), v)

	// an empty value is still a hit
	v, err = coerce.Lookup(m, coerce.Str("empty"))
	require.NoError(t, err)
	require.Equal(t, coerce.Str(""), v)

	// a byte key is never retried as text
	_, err = coerce.Lookup(m, coerce.Bytes("text"))
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, err = coerce.Lookup(m, coerce.Str("missing"))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestToBytes(t *testing.T) {
	require.Equal(t, []byte("raw"), coerce.ToBytes([]byte("raw")))
	require.Equal(t, []byte("str"), coerce.ToBytes("str"))
	require.Equal(t, []byte("leaf"), coerce.ToBytes(coerce.Str("leaf")))
	require.Equal(t, []byte("blob"), coerce.ToBytes(coerce.Bytes("blob")))
	require.Equal(t, []byte("7"), coerce.ToBytes(7))
}

func TestToString(t *testing.T) {
	s, err := coerce.ToString([]byte("raw"))
	require.NoError(t, err)
	require.Equal(t, "raw", s)

	s, err = coerce.ToString(coerce.Str("leaf"))
	require.NoError(t, err)
	require.Equal(t, "leaf", s)

	s, err = coerce.ToString(12)
	require.NoError(t, err)
	require.Equal(t, "12", s)

	_, err = coerce.ToString([]byte{0xff})
	require.ErrorIs(t, err, serrors.ErrEncoding)
}

func TestJoinPath(t *testing.T) {
	got := coerce.JoinPath("repo", []byte(".hg"), coerce.Str("store"))
	require.Equal(t, []byte(filepath.Join("repo", ".hg", "store")), got)

	require.Equal(t, []byte("only"), coerce.JoinPath("only"))
}

func TestTrimLeft(t *testing.T) {
	require.Equal(t, []byte("heads/main"), coerce.TrimLeft([]byte("refs/heads/main"), "refs/"))
	require.Equal(t, []byte("x"), coerce.TrimLeft(coerce.Str("//x"), []byte("/")))
}
