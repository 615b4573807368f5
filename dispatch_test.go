package streamvbyte

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestScalarDispatchAgreesWithDefaultDispatch checks the base variant's
// encoder (EncodeUint32, both key formats) against itself with the group
// dispatch vars forced to their scalar implementations, catching any
// divergence between the two code paths
// that boundary-size round-trip tests alone might not exercise (they'd
// only disagree, not fail outright, if the vector path had a bug that
// happened to still round-trip).
func TestScalarDispatchAgreesWithDefaultDispatch(t *testing.T) {
	values := sequentialValues(256)
	for _, format := range []Format{Format1234, Format0124} {
		defaultDst := make([]byte, Bound(len(values)))
		defaultLen := EncodeUint32(defaultDst, values, format)

		restore := forceScalarDispatch()
		scalarDst := make([]byte, Bound(len(values)))
		scalarLen := EncodeUint32(scalarDst, values, format)
		restore()

		assert.Equal(t, defaultLen, scalarLen, "format=%v", format)
		assert.Equal(t, defaultDst[:defaultLen], scalarDst[:scalarLen], "format=%v", format)
	}
}
