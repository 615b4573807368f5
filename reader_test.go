package streamvbyte

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeForReader(t *testing.T, format Format, variant Variant, values []uint32, previous uint32) []byte {
	t.Helper()
	dst := make([]byte, Bound(len(values)))
	var n int
	switch variant {
	case VariantZigzag:
		n = EncodeZigzagUint32(dst, values, format)
	case VariantDelta:
		n = EncodeDeltaUint32(dst, values, format, previous)
	case VariantDeltaZigzag:
		n = EncodeDeltaZigzagUint32(dst, values, format, previous)
	case VariantDeltaTranspose:
		n = EncodeDeltaTransposeUint32(dst, values, format, previous)
	default:
		n = EncodeUint32(dst, values, format)
	}
	return dst[:n]
}

func TestReaderGetAndNext(t *testing.T) {
	values := []uint32{10, 20, 30, 40, 50, 60, 70, 80}
	buf := encodeForReader(t, Format1234, VariantBase, values, 0)

	r := NewReader()
	r.Load(buf, Format1234, VariantBase, len(values), 0)

	require.True(t, r.IsLoaded())
	require.Equal(t, len(values), r.Len())

	val, err := r.Get(3)
	require.NoError(t, err)
	assert.Equal(t, uint32(40), val)

	_, err = r.Get(-1)
	assert.ErrorIs(t, err, ErrPositionOutOfRange)
	_, err = r.Get(len(values))
	assert.ErrorIs(t, err, ErrPositionOutOfRange)

	r.Reset()
	for i, want := range values {
		val, pos, ok := r.Next()
		require.True(t, ok)
		assert.Equal(t, i, pos)
		assert.Equal(t, want, val)
	}
	_, _, ok := r.Next()
	assert.False(t, ok)
}

func TestReaderGetSafe(t *testing.T) {
	buf := encodeForReader(t, Format0124, VariantBase, []uint32{1, 2, 3}, 0)
	r := NewReader()
	r.Load(buf, Format0124, VariantBase, 3, 0)

	val, ok := r.GetSafe(1)
	assert.True(t, ok)
	assert.Equal(t, uint32(2), val)

	_, ok = r.GetSafe(99)
	assert.False(t, ok)

	unloaded := NewReader()
	_, ok = unloaded.GetSafe(0)
	assert.False(t, ok)
}

func TestReaderDecode(t *testing.T) {
	values := []uint32{5, 4, 3, 2, 1, 0}
	buf := encodeForReader(t, Format1234, VariantBase, values, 0)
	r := NewReader()
	r.Load(buf, Format1234, VariantBase, len(values), 0)

	got := r.Decode(nil)
	assert.Equal(t, values, got)

	reused := make([]uint32, 0, 64)
	got = r.Decode(reused)
	assert.Equal(t, values, got)
}

func TestReaderSkipToSortedBinarySearch(t *testing.T) {
	ascending := make([]uint32, 100)
	for i := range ascending {
		ascending[i] = uint32(i * 3)
	}
	buf := encodeForReader(t, Format1234, VariantDelta, ascending, 0)

	r := NewReader()
	r.Load(buf, Format1234, VariantDelta, len(ascending), 0)
	require.True(t, r.IsSorted())

	val, pos, ok := r.SkipTo(50)
	require.True(t, ok)
	assert.GreaterOrEqual(t, val, uint32(50))
	assert.Equal(t, int(val/3), pos)

	r.Reset()
	_, _, ok = r.SkipTo(ascending[len(ascending)-1] + 1)
	assert.False(t, ok)
}

func TestReaderSkipToLinearForUnsortedVariant(t *testing.T) {
	values := []uint32{10, 3, 40, 1, 90}
	buf := encodeForReader(t, Format1234, VariantBase, values, 0)

	r := NewReader()
	r.Load(buf, Format1234, VariantBase, len(values), 0)
	require.False(t, r.IsSorted())

	val, pos, ok := r.SkipTo(40)
	require.True(t, ok)
	assert.Equal(t, uint32(40), val)
	assert.Equal(t, 2, pos)
}

func TestReaderLoadReusesBackingArray(t *testing.T) {
	r := NewReader()
	first := encodeForReader(t, Format1234, VariantBase, []uint32{1, 2, 3, 4, 5}, 0)
	r.Load(first, Format1234, VariantBase, 5, 0)

	second := encodeForReader(t, Format1234, VariantBase, []uint32{9, 8}, 0)
	r.Load(second, Format1234, VariantBase, 2, 0)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []uint32{9, 8}, r.Decode(nil))
}

func TestReaderRoundTripsEveryVariant(t *testing.T) {
	values := make([]uint32, 200)
	for i := range values {
		values[i] = uint32(i*7 + 1)
	}

	variants := []Variant{VariantBase, VariantZigzag, VariantDelta, VariantDeltaZigzag, VariantDeltaTranspose}
	for _, format := range []Format{Format1234, Format0124} {
		for _, variant := range variants {
			buf := encodeForReader(t, format, variant, values, 0)
			r := NewReader()
			r.Load(buf, format, variant, len(values), 0)
			assert.Equal(t, values, r.Decode(nil), "format=%v variant=%v", format, variant)
		}
	}
}
