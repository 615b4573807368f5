package streamvbyte

// Per-element key classification, payload byte read/write helpers and the
// precomputed per-control-byte length table (spec Section 4.2).
//
// classify1234/classify0124 are the authoritative definition of the format:
// every other table in this file (and the tables embedded into the
// avo-generated assembly in internal/avo) is derived from them, never the
// other way around.

// classify1234 returns the 2-bit key and payload byte count for v under the
// "1234" format: the smallest width in {1,2,3,4} that represents v exactly.
func classify1234(v uint32) (code byte, length int) {
	switch {
	case v < 1<<8:
		return 0, 1
	case v < 1<<16:
		return 1, 2
	case v < 1<<24:
		return 2, 3
	default:
		return 3, 4
	}
}

// classify0124 returns the 2-bit key and payload byte count for v under the
// "0124" format: the smallest width in {0,1,2,4} that represents v exactly.
func classify0124(v uint32) (code byte, length int) {
	switch {
	case v == 0:
		return 0, 0
	case v < 1<<8:
		return 1, 1
	case v < 1<<16:
		return 2, 2
	default:
		return 3, 4
	}
}

// lengthFor1234/lengthFor0124 are the decoder-side inverse of the classify
// functions: given a 2-bit key, how many payload bytes were stored.
func lengthFor1234(code byte) int { return int(code) + 1 }

func lengthFor0124(code byte) int {
	switch code {
	case 0:
		return 0
	case 1:
		return 1
	case 2:
		return 2
	default:
		return 4
	}
}

func classify(v uint32, format Format) (code byte, length int) {
	if format == Format0124 {
		return classify0124(v)
	}
	return classify1234(v)
}

func lengthForCode(code byte, format Format) int {
	if format == Format0124 {
		return lengthFor0124(code)
	}
	return lengthFor1234(code)
}

// controlLength[format][ctrl] is the total payload byte count for the four
// elements packed into a single control byte (four 2-bit keys). This is the
// per-control-byte analogue of lengthForCode, precomputed once so random
// access (decodeAtRaw) can skip whole control bytes without summing per
// element; the SIMD kernels in
// internal/avo regenerate the identical table from the same formula when
// they are built, since avo-generated code is a standalone translation
// unit that cannot import this package.
var controlLength [2][256]uint8

func init() {
	for ctrl := 0; ctrl < 256; ctrl++ {
		for f := Format1234; f <= Format0124; f++ {
			var total int
			for i := 0; i < 4; i++ {
				code := byte(ctrl>>(i*2)) & 0x3
				total += lengthForCode(code, f)
			}
			controlLength[f][ctrl] = uint8(total)
		}
	}
}

// writeValue writes the low-order length bytes of v into dst, little
// endian, and returns length.
func writeValue(dst []byte, v uint32, length int) int {
	switch length {
	case 0:
	case 1:
		dst[0] = byte(v)
	case 2:
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
	case 3:
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v >> 16)
	case 4:
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v >> 16)
		dst[3] = byte(v >> 24)
	}
	return length
}

// readValue reads length little-endian bytes from src and zero-extends them
// to a uint32.
func readValue(src []byte, length int) uint32 {
	switch length {
	case 0:
		return 0
	case 1:
		return uint32(src[0])
	case 2:
		return uint32(src[0]) | uint32(src[1])<<8
	case 3:
		return uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16
	default:
		return uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16 | uint32(src[3])<<24
	}
}
