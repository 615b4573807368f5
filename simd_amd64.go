//go:build amd64 && !noasm

package streamvbyte

//go:generate go run ./internal/avo -component=all

import (
	"golang.org/x/sys/cpu"
)

func init() {
	// PSHUFB (the byte-shuffle the group kernels key their table lookup on)
	// needs SSSE3; the delta/zigzag vector primitives only need SSE2, which
	// every amd64 CPU has unconditionally, so SSSE3 is the real gate here.
	simdAvailable = cpu.X86.HasSSSE3
	if simdAvailable {
		zigzagEncodeGroup = zigzagEncodeGroupSIMD
		zigzagDecodeGroup = zigzagDecodeGroupSIMD
		deltaEncodeGroup = deltaEncodeGroupSIMD
		deltaDecodeGroup = deltaDecodeGroupSIMD
		encodeGroup8 = encodeGroup8SIMD
		decodeGroup8 = decodeGroup8SIMD
	}
}

// Assembly entry points generated by internal/avo (zigzag.go, delta.go,
// svb1234.go, svb0124.go) via `go generate`, mirroring the teacher's
// simdpack.go declaration style.

//go:noescape
func zigzagEncode8Asm(buf *[8]uint32)

//go:noescape
func zigzagDecode8Asm(buf *[8]uint32)

//go:noescape
func deltaEncode8Asm(buf *[8]uint32, seed uint32) uint32

//go:noescape
func deltaDecode8Asm(buf *[8]uint32, seed uint32) uint32

//go:noescape
func svbEncode8_1234Asm(keyDst *byte, dataDst *byte, vals *[8]uint32) uint32

//go:noescape
func svbDecode8_1234Asm(vals *[8]uint32, keySrc *byte, dataSrc *byte) uint32

//go:noescape
func svbEncode8_0124Asm(keyDst *byte, dataDst *byte, vals *[8]uint32) uint32

//go:noescape
func svbDecode8_0124Asm(vals *[8]uint32, keySrc *byte, dataSrc *byte) uint32

func zigzagEncodeGroupSIMD(buf *[8]uint32) {
	zigzagEncode8Asm(buf)
}

func zigzagDecodeGroupSIMD(buf *[8]uint32) {
	zigzagDecode8Asm(buf)
}

func deltaEncodeGroupSIMD(buf *[8]uint32, seed uint32) uint32 {
	return deltaEncode8Asm(buf, seed)
}

func deltaDecodeGroupSIMD(buf *[8]uint32, seed uint32) uint32 {
	return deltaDecode8Asm(buf, seed)
}

// encodeGroup8SIMD encodes exactly 8 values from vals into keyDst (2 bytes)
// and dataDst, and returns the number of payload bytes written.
func encodeGroup8SIMD(keyDst, dataDst []byte, vals *[8]uint32, format Format) int {
	var n uint32
	if format == Format0124 {
		n = svbEncode8_0124Asm(&keyDst[0], &dataDst[0], vals)
	} else {
		n = svbEncode8_1234Asm(&keyDst[0], &dataDst[0], vals)
	}
	return int(n)
}

// decodeGroup8SIMD decodes 8 values from keySrc (2 bytes)/dataSrc into vals
// and returns the number of payload bytes consumed.
func decodeGroup8SIMD(vals *[8]uint32, keySrc, dataSrc []byte, format Format) int {
	var n uint32
	if format == Format0124 {
		n = svbDecode8_0124Asm(vals, &keySrc[0], &dataSrc[0])
	} else {
		n = svbDecode8_1234Asm(vals, &keySrc[0], &dataSrc[0])
	}
	return int(n)
}
