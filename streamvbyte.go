// Package streamvbyte implements the StreamVByte family of variable-byte
// codecs for sequences of unsigned 32-bit integers.
//
// A compressed stream is the concatenation of a key block (two bits per
// element, four elements per byte) and a data block (0-4 little-endian
// payload bytes per element, chosen by the key). Decoupling the two blocks
// lets the encode and decode kernels process eight elements per iteration
// using a table-driven byte shuffle instead of per-element branching.
// The delta+transpose variant is the exception to this layout: it writes
// one key block/data block pair per 64-element tile, followed by one pair
// for the remaining tail, so its key bytes are not contiguous.
//
// Ten variants are available along two independent axes: the key format
// ("1234", every key stores 1-4 bytes; "0124", every key stores 0, 1, 2 or
// 4 bytes) and an optional preprocessing transform (none, zigzag, delta,
// delta+zigzag, delta+transpose). The stream does not record which variant
// produced it or how many elements it holds; callers track both out of
// band and must decode with the matching variant and count.
package streamvbyte

import "fmt"

// Format selects the key layout used by a variant.
type Format uint8

const (
	// Format1234 stores 1, 2, 3 or 4 payload bytes per element.
	Format1234 Format = iota
	// Format0124 stores 0, 1, 2 or 4 payload bytes per element. Zero-valued
	// elements cost only their two key bits.
	Format0124
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case Format1234:
		return "1234"
	case Format0124:
		return "0124"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Bound returns the worst-case number of bytes a stream of n elements can
// occupy: ceil(n/4) key bytes plus up to 4 bytes of payload per element.
// Callers must size encode destination buffers to at least Bound(n).
func Bound(n int) int {
	if n < 0 {
		panic("streamvbyte: negative element count")
	}
	return keyBytes(n) + 4*n
}

// MaxCompressedLen is an alias of Bound using the name familiar from the
// reference StreamVByte C library.
func MaxCompressedLen(n int) int { return Bound(n) }

func keyBytes(n int) int { return (n + 3) / 4 }

// EncodeUint32 encodes src into dst using the base variant (no
// preprocessing) and returns the number of bytes written. dst must have
// length at least Bound(len(src)); dst and src must not overlap.
func EncodeUint32(dst []byte, src []uint32, format Format) int {
	return encodeBase(dst, src, format)
}

// DecodeUint32 decodes n elements from src into dst using the base variant
// and returns the number of bytes consumed from src. dst must have length
// at least n.
func DecodeUint32(dst []uint32, src []byte, n int, format Format) int {
	return decodeBase(dst[:n], src, format)
}

// EncodeZigzagUint32 encodes src, treating each element as the zigzag
// mapping of a signed magnitude, and returns the number of bytes written.
func EncodeZigzagUint32(dst []byte, src []uint32, format Format) int {
	return encodeZigzag(dst, src, format)
}

// DecodeZigzagUint32 is the inverse of EncodeZigzagUint32.
func DecodeZigzagUint32(dst []uint32, src []byte, n int, format Format) int {
	return decodeZigzag(dst[:n], src, format)
}

// EncodeDeltaUint32 delta-encodes src against the virtual predecessor
// previous (src[-1] = previous) and stream-vbyte encodes the result.
func EncodeDeltaUint32(dst []byte, src []uint32, format Format, previous uint32) int {
	return encodeDelta(dst, src, format, previous)
}

// DecodeDeltaUint32 is the inverse of EncodeDeltaUint32; previous must match
// the value given at encode time.
func DecodeDeltaUint32(dst []uint32, src []byte, n int, format Format, previous uint32) int {
	return decodeDelta(dst[:n], src, format, previous)
}

// EncodeDeltaZigzagUint32 delta-encodes src against previous, zigzag-maps
// each (possibly negative) delta to an unsigned value, and stream-vbyte
// encodes the result. Unlike EncodeDeltaUint32 this tolerates decreasing
// sequences without growing the encoded width.
func EncodeDeltaZigzagUint32(dst []byte, src []uint32, format Format, previous uint32) int {
	return encodeDeltaZigzag(dst, src, format, previous)
}

// DecodeDeltaZigzagUint32 is the inverse of EncodeDeltaZigzagUint32.
func DecodeDeltaZigzagUint32(dst []uint32, src []byte, n int, format Format, previous uint32) int {
	return decodeDeltaZigzag(dst[:n], src, format, previous)
}

// EncodeDeltaTransposeUint32 processes src in 64-element tiles, transposing
// each tile into four interleaved 16-long delta chains before encoding.
// Tails shorter than 64 elements fall back to plain delta encoding. The
// four per-lane chains of a tile are independent of each other; the tile
// deltas are computed by a portable loop, not by the vector delta kernel
// that EncodeDeltaUint32 uses. The output is defined only together with
// its own decoder.
func EncodeDeltaTransposeUint32(dst []byte, src []uint32, format Format, previous uint32) int {
	return encodeDeltaTranspose(dst, src, format, previous)
}

// DecodeDeltaTransposeUint32 is the inverse of EncodeDeltaTransposeUint32.
func DecodeDeltaTransposeUint32(dst []uint32, src []byte, n int, format Format, previous uint32) int {
	return decodeDeltaTranspose(dst[:n], src, format, previous)
}
