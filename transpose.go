package streamvbyte

// Delta+transpose orchestration (spec Section 4.5). A 64-element tile is
// viewed as sixteen rows of four lanes (row r holds elements
// 4r..4r+3). Each lane forms an independent delta chain down the rows;
// differencing row-vectors lane-wise instead of element-by-element is what
// lets a vector implementation delta four chains in parallel per
// instruction instead of carrying a single serial dependency across all 64
// elements. The encoded byte order is column-major: all sixteen deltas of
// lane 0, then lane 1, then lane 2, then lane 3. Tiles shorter than 64
// elements fall back to the plain (non-transposed) delta kernel; the
// per-element scalar delta kernel already covers tails below 8 elements.
//
// The seed carried between tiles is the last *original* row of the
// previous tile (one value per lane), not its delta. The first tile's
// virtual row -1 is the caller-supplied previous value broadcast across
// all four lanes.

const tileSize = 64
const tileRows = tileSize / 4

func encodeDeltaTranspose(dst []byte, src []uint32, format Format, previous uint32) int {
	n := len(src)
	pos := 0
	var lanePrev [4]uint32
	for i := range lanePrev {
		lanePrev[i] = previous
	}

	var tile [tileSize]uint32
	i := 0
	for ; i+tileSize <= n; i += tileSize {
		copy(tile[:], src[i:i+tileSize])
		pos += encodeTransposedTile(dst[pos:], &tile, &lanePrev, format)
	}

	rem := n - i
	if rem > 0 {
		pos += encodeDelta(dst[pos:], src[i:], format, lanePrev[3])
	}
	return pos
}

func decodeDeltaTranspose(dst []uint32, src []byte, format Format, previous uint32) int {
	n := len(dst)
	pos := 0
	var lanePrev [4]uint32
	for i := range lanePrev {
		lanePrev[i] = previous
	}

	var tile [tileSize]uint32
	i := 0
	for ; i+tileSize <= n; i += tileSize {
		pos += decodeTransposedTile(&tile, src[pos:], &lanePrev, format)
		copy(dst[i:i+tileSize], tile[:])
	}

	rem := n - i
	if rem > 0 {
		pos += decodeDelta(dst[i:], src[pos:], format, lanePrev[3])
	}
	return pos
}

// encodeTransposedTile encodes one 64-element tile and advances lanePrev to
// this tile's last row for the next call.
func encodeTransposedTile(dst []byte, tile *[tileSize]uint32, lanePrev *[4]uint32, format Format) int {
	var serialized [tileSize]uint32
	prev := *lanePrev
	for r := 0; r < tileRows; r++ {
		for c := 0; c < 4; c++ {
			v := tile[r*4+c]
			serialized[c*tileRows+r] = deltaEncode32(v, prev[c])
			prev[c] = v
		}
	}
	*lanePrev = prev
	return encodeBase(dst, serialized[:], format)
}

// decodeTransposedTile is the inverse of encodeTransposedTile.
func decodeTransposedTile(tile *[tileSize]uint32, src []byte, lanePrev *[4]uint32, format Format) int {
	var serialized [tileSize]uint32
	consumed := decodeBase(serialized[:], src, format)

	prev := *lanePrev
	for r := 0; r < tileRows; r++ {
		for c := 0; c < 4; c++ {
			d := serialized[c*tileRows+r]
			v := deltaDecode32(d, prev[c])
			tile[r*4+c] = v
			prev[c] = v
		}
	}
	*lanePrev = prev
	return consumed
}
