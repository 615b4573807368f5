// Random access into a StreamVByte-encoded buffer without decoding the
// whole stream. Only the base and zigzag variants support this: every
// delta variant makes each element depend on everything before it, so
// reading one element there costs the same full decode Reader.Load does.

package streamvbyte

// DecodeAt decodes the element at index out of a count-element stream
// encoded with EncodeUint32, touching only the key bytes up to index's
// control byte and that control byte's data bytes.
func DecodeAt(buf []byte, format Format, count, index int) uint32 {
	return decodeAtRaw(buf, format, count, index)
}

// DecodeZigzagAt is DecodeAt for a stream encoded with EncodeZigzagUint32.
func DecodeZigzagAt(buf []byte, format Format, count, index int) uint32 {
	return uint32(zigzagDecode32(decodeAtRaw(buf, format, count, index)))
}

// decodeAtRaw locates and decodes the raw (pre-transform) value at index
// without materializing any element before it.
func decodeAtRaw(buf []byte, format Format, count, index int) uint32 {
	numControlBytes := keyBytes(count)
	controlBytes := buf[:numControlBytes]
	dataBytes := buf[numControlBytes:]

	blockIndex := index >> 2
	posInBlock := index & 0x3

	dataOffset := 0
	for i := 0; i < blockIndex; i++ {
		dataOffset += int(controlLength[format][controlBytes[i]])
	}

	ctrl := controlBytes[blockIndex]
	for i := 0; i < posInBlock; i++ {
		code := (ctrl >> uint(i*2)) & 0x3
		dataOffset += lengthForCode(code, format)
	}

	code := (ctrl >> uint(posInBlock*2)) & 0x3
	length := lengthForCode(code, format)
	return readValue(dataBytes[dataOffset:], length)
}
