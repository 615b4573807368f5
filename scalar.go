package streamvbyte

// Portable scalar encode/decode kernels (spec Section 4.6). These are
// byte-at-a-time and make no assumption about host endianness beyond the
// little-endian wire format itself; every SIMD kernel in this module must
// agree with these functions byte-for-byte, so they double as the
// correctness oracle used by the tests.

// encodeScalarRange encodes src into keyDst (key bytes) and dataDst
// (payload bytes), both positioned at the start of their respective
// regions, and returns the number of payload bytes written. keyDst must
// have length at least ceil(len(src)/4).
func encodeScalarRange(keyDst, dataDst []byte, src []uint32, format Format) int {
	var keys byte
	var shift uint
	keyPos := 0
	dataPos := 0
	for _, v := range src {
		code, length := classify(v, format)
		keys |= code << shift
		dataPos += writeValue(dataDst[dataPos:], v, length)
		shift += 2
		if shift == 8 {
			keyDst[keyPos] = keys
			keyPos++
			keys = 0
			shift = 0
		}
	}
	if shift > 0 {
		keyDst[keyPos] = keys
	}
	return dataPos
}

// decodeScalarRange decodes len(dst) elements from keySrc/dataSrc into dst
// and returns the number of payload bytes consumed.
func decodeScalarRange(dst []uint32, keySrc, dataSrc []byte, format Format) int {
	var keys byte
	var shift uint
	keyPos := 0
	dataPos := 0
	for i := range dst {
		if shift == 0 {
			keys = keySrc[keyPos]
			keyPos++
		}
		code := (keys >> shift) & 0x3
		length := lengthForCode(code, format)
		dst[i] = readValue(dataSrc[dataPos:], length)
		dataPos += length
		shift += 2
		if shift == 8 {
			shift = 0
		}
	}
	return dataPos
}

// encodeBase is the entry point for the no-preprocessing variant shared by
// both key formats; it processes whole groups of 8 through encodeGroup8
// (vector-backed when available, scalar otherwise) and finishes any
// remainder below 8 elements with encodeScalarRange directly.
func encodeBase(dst []byte, src []uint32, format Format) int {
	n := len(src)
	kb := keyBytes(n)
	i, keyPos, dataPos := 0, 0, kb

	var buf [8]uint32
	for ; i+8 <= n; i += 8 {
		copy(buf[:], src[i:i+8])
		dataPos += encodeGroup8(dst[keyPos:keyPos+2], dst[dataPos:], &buf, format)
		keyPos += 2
	}
	dataPos += encodeScalarRange(dst[keyPos:], dst[dataPos:], src[i:], format)
	return dataPos
}

func decodeBase(dst []uint32, src []byte, format Format) int {
	n := len(dst)
	kb := keyBytes(n)
	i, keyPos, dataPos := 0, 0, kb

	var buf [8]uint32
	for ; i+8 <= n; i += 8 {
		dataPos += decodeGroup8(&buf, src[keyPos:keyPos+2], src[dataPos:], format)
		copy(dst[i:i+8], buf[:])
		keyPos += 2
	}
	dataPos += decodeScalarRange(dst[i:], src[keyPos:], src[dataPos:], format)
	return dataPos
}
