package streamvbyte

// Zigzag and delta preprocessing variants (spec Sections 4.4, 3). Each
// variant transforms a full group of 8 raw values in place via the
// zigzagEncodeGroup/deltaEncodeGroup dispatch vars (dispatch.go) before
// handing the group to encodeGroup8, so encoding never allocates
// regardless of input length (spec Section 5) and the vector preprocessing
// kernels apply to whole groups rather than element-by-element.

func encodeZigzag(dst []byte, src []uint32, format Format) int {
	n := len(src)
	kb := keyBytes(n)
	i, keyPos, dataPos := 0, 0, kb

	var buf [8]uint32
	for ; i+8 <= n; i += 8 {
		copy(buf[:], src[i:i+8])
		zigzagEncodeGroup(&buf)
		dataPos += encodeGroup8(dst[keyPos:keyPos+2], dst[dataPos:], &buf, format)
		keyPos += 2
	}
	rem := n - i
	for j := 0; j < rem; j++ {
		buf[j] = zigzagEncode32(int32(src[i+j]))
	}
	dataPos += encodeScalarRange(dst[keyPos:], dst[dataPos:], buf[:rem], format)
	return dataPos
}

func decodeZigzag(dst []uint32, src []byte, format Format) int {
	n := len(dst)
	kb := keyBytes(n)
	i, keyPos, dataPos := 0, 0, kb

	var buf [8]uint32
	for ; i+8 <= n; i += 8 {
		dataPos += decodeGroup8(&buf, src[keyPos:keyPos+2], src[dataPos:], format)
		zigzagDecodeGroup(&buf)
		copy(dst[i:i+8], buf[:])
		keyPos += 2
	}
	rem := n - i
	dataPos += decodeScalarRange(buf[:rem], src[keyPos:], src[dataPos:], format)
	for j := 0; j < rem; j++ {
		dst[i+j] = uint32(zigzagDecode32(buf[j]))
	}
	return dataPos
}

func encodeDelta(dst []byte, src []uint32, format Format, previous uint32) int {
	n := len(src)
	kb := keyBytes(n)
	i, keyPos, dataPos := 0, 0, kb
	prev := previous

	var buf [8]uint32
	for ; i+8 <= n; i += 8 {
		copy(buf[:], src[i:i+8])
		prev = deltaEncodeGroup(&buf, prev)
		dataPos += encodeGroup8(dst[keyPos:keyPos+2], dst[dataPos:], &buf, format)
		keyPos += 2
	}
	rem := n - i
	for j := 0; j < rem; j++ {
		v := src[i+j]
		buf[j] = deltaEncode32(v, prev)
		prev = v
	}
	dataPos += encodeScalarRange(dst[keyPos:], dst[dataPos:], buf[:rem], format)
	return dataPos
}

func decodeDelta(dst []uint32, src []byte, format Format, previous uint32) int {
	n := len(dst)
	kb := keyBytes(n)
	i, keyPos, dataPos := 0, 0, kb
	prev := previous

	var buf [8]uint32
	for ; i+8 <= n; i += 8 {
		dataPos += decodeGroup8(&buf, src[keyPos:keyPos+2], src[dataPos:], format)
		prev = deltaDecodeGroup(&buf, prev)
		copy(dst[i:i+8], buf[:])
		keyPos += 2
	}
	rem := n - i
	dataPos += decodeScalarRange(buf[:rem], src[keyPos:], src[dataPos:], format)
	for j := 0; j < rem; j++ {
		v := deltaDecode32(buf[j], prev)
		dst[i+j] = v
		prev = v
	}
	return dataPos
}

func encodeDeltaZigzag(dst []byte, src []uint32, format Format, previous uint32) int {
	n := len(src)
	kb := keyBytes(n)
	i, keyPos, dataPos := 0, 0, kb
	prev := previous

	var buf [8]uint32
	for ; i+8 <= n; i += 8 {
		copy(buf[:], src[i:i+8])
		prev = deltaEncodeGroup(&buf, prev)
		zigzagEncodeGroup(&buf)
		dataPos += encodeGroup8(dst[keyPos:keyPos+2], dst[dataPos:], &buf, format)
		keyPos += 2
	}
	rem := n - i
	for j := 0; j < rem; j++ {
		v := src[i+j]
		d := deltaEncode32(v, prev)
		buf[j] = zigzagEncode32(int32(d))
		prev = v
	}
	dataPos += encodeScalarRange(dst[keyPos:], dst[dataPos:], buf[:rem], format)
	return dataPos
}

func decodeDeltaZigzag(dst []uint32, src []byte, format Format, previous uint32) int {
	n := len(dst)
	kb := keyBytes(n)
	i, keyPos, dataPos := 0, 0, kb
	prev := previous

	var buf [8]uint32
	for ; i+8 <= n; i += 8 {
		dataPos += decodeGroup8(&buf, src[keyPos:keyPos+2], src[dataPos:], format)
		zigzagDecodeGroup(&buf)
		prev = deltaDecodeGroup(&buf, prev)
		copy(dst[i:i+8], buf[:])
		keyPos += 2
	}
	rem := n - i
	dataPos += decodeScalarRange(buf[:rem], src[keyPos:], src[dataPos:], format)
	for j := 0; j < rem; j++ {
		d := zigzagDecode32(buf[j])
		v := deltaDecode32(uint32(d), prev)
		dst[i+j] = v
		prev = v
	}
	return dataPos
}
