package streamvbyte

import (
	"errors"
	"slices"
)

// Variant selects which preprocessing transform a Reader decodes.
type Variant int

const (
	// VariantBase applies no preprocessing.
	VariantBase Variant = iota
	// VariantZigzag maps each element through the zigzag transform.
	VariantZigzag
	// VariantDelta decodes deltas against a caller-supplied previous value.
	VariantDelta
	// VariantDeltaZigzag decodes zigzag-mapped deltas.
	VariantDeltaZigzag
	// VariantDeltaTranspose decodes 64-element delta+transpose tiles.
	VariantDeltaTranspose
)

// ErrNotLoaded is returned when operations are called before Load.
var ErrNotLoaded = errors.New("streamvbyte: reader not loaded")

// ErrPositionOutOfRange is returned when accessing a position beyond the
// block size.
var ErrPositionOutOfRange = errors.New("streamvbyte: position out of range")

// Reader provides random access and sequential iteration over a decoded
// StreamVByte stream. A Reader is not safe for concurrent use; create one
// Reader per goroutine sharing the same encoded buffer.
type Reader struct {
	values   []uint32
	pos      int
	count    int
	isSorted bool
	loaded   bool
}

// NewReader creates an empty Reader that must be loaded with Load before use.
func NewReader() *Reader {
	return &Reader{}
}

// Load decodes count elements of buf, encoded under format/variant with the
// given previous seed (ignored by VariantBase and VariantZigzag), and
// resets the reader's iteration position. Load can be called repeatedly to
// reuse the Reader's backing array across buffers. Load panics under the
// same preconditions EncodeUint32/DecodeUint32 and friends do: it performs
// no validation of buf, neither of its contents nor of its length.
func (r *Reader) Load(buf []byte, format Format, variant Variant, count int, previous uint32) {
	if cap(r.values) < count {
		r.values = make([]uint32, count)
	} else {
		r.values = r.values[:count]
	}

	switch variant {
	case VariantZigzag:
		DecodeZigzagUint32(r.values, buf, count, format)
	case VariantDelta:
		DecodeDeltaUint32(r.values, buf, count, format, previous)
	case VariantDeltaZigzag:
		DecodeDeltaZigzagUint32(r.values, buf, count, format, previous)
	case VariantDeltaTranspose:
		DecodeDeltaTransposeUint32(r.values, buf, count, format, previous)
	default:
		DecodeUint32(r.values, buf, count, format)
	}

	r.count = count
	// Plain delta (without zigzag) only yields a non-decreasing sequence
	// when the caller's original values were themselves non-decreasing;
	// the flag is a hint for SkipTo, not a guarantee this package checks.
	r.isSorted = variant == VariantDelta || variant == VariantDeltaTranspose
	r.pos = 0
	r.loaded = true
}

// IsLoaded returns whether the reader has been loaded with data.
func (r *Reader) IsLoaded() bool {
	return r.loaded
}

// Len returns the number of elements in the block.
func (r *Reader) Len() int {
	return r.count
}

// Pos returns the current position for sequential iteration.
func (r *Reader) Pos() int {
	return r.pos
}

// Reset resets the reader position to the beginning for sequential iteration.
func (r *Reader) Reset() {
	r.pos = 0
}

// Get returns the value at the specified position.
func (r *Reader) Get(pos int) (uint32, error) {
	if !r.loaded {
		return 0, ErrNotLoaded
	}
	if pos < 0 || pos >= r.count {
		return 0, ErrPositionOutOfRange
	}
	return r.values[pos], nil
}

// GetSafe returns the value at the specified position and whether the
// position was valid.
func (r *Reader) GetSafe(pos int) (uint32, bool) {
	val, err := r.Get(pos)
	return val, err == nil
}

// Next returns the next value in sequence and its position.
func (r *Reader) Next() (value uint32, pos int, ok bool) {
	if !r.loaded || r.pos >= r.count {
		return 0, 0, false
	}
	value = r.values[r.pos]
	pos = r.pos
	r.pos++
	return value, pos, true
}

// SkipTo advances to and returns the first value >= req at or after the
// current position. Sorted streams (see IsSorted) use binary search;
// everything else falls back to a linear scan.
func (r *Reader) SkipTo(req uint32) (value uint32, pos int, ok bool) {
	if !r.loaded || r.pos >= r.count {
		return 0, 0, false
	}
	if r.isSorted {
		return r.skipToBinarySearch(req)
	}
	return r.skipToLinear(req)
}

func (r *Reader) skipToBinarySearch(req uint32) (value uint32, pos int, ok bool) {
	searchSlice := r.values[r.pos:]
	idx, _ := slices.BinarySearch(searchSlice, req)
	absPos := r.pos + idx

	if absPos >= r.count {
		r.pos = r.count
		return 0, 0, false
	}

	r.pos = absPos + 1
	return r.values[absPos], absPos, true
}

func (r *Reader) skipToLinear(req uint32) (value uint32, pos int, ok bool) {
	for r.pos < r.count {
		v := r.values[r.pos]
		p := r.pos
		r.pos++
		if v >= req {
			return v, p, true
		}
	}
	return 0, 0, false
}

// Decode copies all decoded values into dst, growing it if necessary, and
// returns the resulting slice.
func (r *Reader) Decode(dst []uint32) []uint32 {
	if !r.loaded {
		return nil
	}
	if cap(dst) < r.count {
		dst = make([]uint32, r.count)
	} else {
		dst = dst[:r.count]
	}
	copy(dst, r.values)
	return dst
}

// IsSorted reports whether Load was given a variant whose plain-delta
// preprocessing makes SkipTo use binary search.
func (r *Reader) IsSorted() bool {
	return r.isSorted
}
