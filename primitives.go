package streamvbyte

// Scalar zigzag and delta primitives for a single 32-bit word (spec
// Section 4.1). All arithmetic wraps modulo 2^32 by construction of Go's
// unsigned integer types.

// zigzagEncode32 maps a signed magnitude to an unsigned value that stays
// small when x is close to zero in either direction.
func zigzagEncode32(x int32) uint32 {
	return uint32((x << 1) ^ (x >> 31))
}

// zigzagDecode32 is the inverse of zigzagEncode32.
func zigzagDecode32(x uint32) int32 {
	return int32(x>>1) ^ -int32(x&1)
}

// deltaEncode32 returns x-p, wrapping modulo 2^32.
func deltaEncode32(x, p uint32) uint32 { return x - p }

// deltaDecode32 returns x+p, wrapping modulo 2^32; the inverse of
// deltaEncode32.
func deltaDecode32(x, p uint32) uint32 { return x + p }
