package streamvbyte

// Portable group-of-8 implementations. These back the package-level
// dispatch variables in dispatch.go by default and remain the only
// implementation on platforms without an amd64 SIMD build.

func zigzagEncodeGroupScalar(buf *[8]uint32) {
	for i := range buf {
		buf[i] = zigzagEncode32(int32(buf[i]))
	}
}

func zigzagDecodeGroupScalar(buf *[8]uint32) {
	for i := range buf {
		buf[i] = uint32(zigzagDecode32(buf[i]))
	}
}

// deltaEncodeGroupScalar delta-encodes buf in place against seed and
// returns the last original (pre-transform) value, the seed for the next
// group.
func deltaEncodeGroupScalar(buf *[8]uint32, seed uint32) uint32 {
	prev := seed
	for i := range buf {
		v := buf[i]
		buf[i] = deltaEncode32(v, prev)
		prev = v
	}
	return prev
}

// deltaDecodeGroupScalar is the inverse of deltaEncodeGroupScalar and
// returns the last decoded value, the seed for the next group.
func deltaDecodeGroupScalar(buf *[8]uint32, seed uint32) uint32 {
	prev := seed
	for i := range buf {
		v := deltaDecode32(buf[i], prev)
		buf[i] = v
		prev = v
	}
	return prev
}

func encodeGroup8Scalar(keyDst, dataDst []byte, vals *[8]uint32, format Format) int {
	return encodeScalarRange(keyDst, dataDst, vals[:], format)
}

func decodeGroup8Scalar(vals *[8]uint32, keySrc, dataSrc []byte, format Format) int {
	return decodeScalarRange(vals[:], keySrc, dataSrc, format)
}
