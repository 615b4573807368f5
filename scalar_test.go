package streamvbyte

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeScalarRangeMatchesDecodeScalarRange(t *testing.T) {
	for _, format := range []Format{Format1234, Format0124} {
		values := sequentialValues(37)
		keyDst := make([]byte, keyBytes(len(values)))
		dataDst := make([]byte, Bound(len(values)))
		written := encodeScalarRange(keyDst, dataDst, values, format)

		got := make([]uint32, len(values))
		consumed := decodeScalarRange(got, keyDst, dataDst, format)
		require.Equal(t, written, consumed)
		assert.Equal(t, values, got)
	}
}

// TestEncodeDecodeBaseAgreeWithForcedScalarDispatch pins the dispatch vars
// to the portable implementations for the duration of the test, so it
// exercises the same assertions on every platform instead of silently
// testing nothing but the vector path when SIMD happens to be available.
func TestEncodeDecodeBaseAgreeWithForcedScalarDispatch(t *testing.T) {
	restore := forceScalarDispatch()
	defer restore()

	values := sequentialValues(64)
	for _, format := range []Format{Format1234, Format0124} {
		dst := make([]byte, Bound(len(values)))
		n := encodeBase(dst, values, format)

		got := make([]uint32, len(values))
		consumed := decodeBase(got, dst[:n], format)
		assert.Equal(t, n, consumed)
		assert.Equal(t, values, got)
	}
}

// forceScalarDispatch overrides every group dispatch var with its portable
// implementation and returns a func that restores the previous values.
func forceScalarDispatch() func() {
	prevZE, prevZD := zigzagEncodeGroup, zigzagDecodeGroup
	prevDE, prevDD := deltaEncodeGroup, deltaDecodeGroup
	prevEG, prevDG := encodeGroup8, decodeGroup8

	zigzagEncodeGroup = zigzagEncodeGroupScalar
	zigzagDecodeGroup = zigzagDecodeGroupScalar
	deltaEncodeGroup = deltaEncodeGroupScalar
	deltaDecodeGroup = deltaDecodeGroupScalar
	encodeGroup8 = encodeGroup8Scalar
	decodeGroup8 = decodeGroup8Scalar

	return func() {
		zigzagEncodeGroup, zigzagDecodeGroup = prevZE, prevZD
		deltaEncodeGroup, deltaDecodeGroup = prevDE, prevDD
		encodeGroup8, decodeGroup8 = prevEG, prevDG
	}
}
