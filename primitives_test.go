package streamvbyte

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZigzagRoundTrip(t *testing.T) {
	cases := []int32{0, 1, -1, 2, -2, 1<<31 - 1, -(1 << 31), 1000, -1000}
	for _, v := range cases {
		encoded := zigzagEncode32(v)
		assert.Equal(t, v, zigzagDecode32(encoded), "v=%d", v)
	}
}

func TestZigzagEncodeKeepsSmallMagnitudesSmall(t *testing.T) {
	assert.Equal(t, uint32(0), zigzagEncode32(0))
	assert.Equal(t, uint32(1), zigzagEncode32(-1))
	assert.Equal(t, uint32(2), zigzagEncode32(1))
	assert.Equal(t, uint32(3), zigzagEncode32(-2))
	assert.Equal(t, uint32(4), zigzagEncode32(2))
}

func TestDeltaRoundTrip(t *testing.T) {
	cases := [][2]uint32{{0, 0}, {5, 3}, {3, 5}, {0, 0xFFFFFFFF}, {0xFFFFFFFF, 0}}
	for _, c := range cases {
		x, p := c[0], c[1]
		d := deltaEncode32(x, p)
		assert.Equal(t, x, deltaDecode32(d, p))
	}
}

func TestDeltaWrapsModulo2To32(t *testing.T) {
	// x < p: the delta must wrap around rather than go negative.
	d := deltaEncode32(0, 10)
	assert.Equal(t, uint32(0)-10, d)
	assert.Equal(t, uint32(0), deltaDecode32(d, 10))
}
