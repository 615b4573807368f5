//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
	op "github.com/mmcloughlin/avo/operand"
)

// This file generates the "1234" key-format group kernels: each of the 8
// values in a group gets a 1..4 byte encoding, keyed by a 2-bit code equal
// to length-1. Classifying a value's byte length is scalar (a handful of
// compares beats a vector of MAX/CMP lane games for 4 lanes at a time);
// packing and unpacking the variable-length payload bytes is where SIMD
// pays off, via a PSHUFB mask looked up from a precomputed 256x16 table
// keyed by the assembled key byte, mirroring the lookup tables.go builds
// for the scalar kernels. Both kernels stage their payload through a
// 16-byte stack scratch buffer rather than loading/storing directly
// against the caller's buffer at a fixed 16-byte stride, since a group's
// actual payload can be as short as 8 bytes and the caller's buffer is
// only ever sized for the group's real length.

func genSvb1234EncodeKernel() {
	shuffleTable, lengthTable := emitEncodeTables("svb1234", keyFormat1234)

	TEXT("svbEncode8_1234Asm", NOSPLIT, "func(keyDst *byte, dataDst *byte, vals *[8]uint32) uint32")
	Doc("svbEncode8_1234Asm encodes 8 values under the 1234 key format into")
	Doc("2 key bytes and a variable-length payload, returning the payload length.")

	keyDst := Load(Param("keyDst"), GP64())
	dataDst := Load(Param("dataDst"), GP64())
	vals := Load(Param("vals"), GP64())

	total := GP64()
	XORQ(total, total)

	scratch := AllocLocal(16)

	for g := 0; g < 2; g++ {
		suffix := suffixFor("1234_enc", g)

		c0 := emitClassifyLane(vals, g*16+0, keyFormat1234, suffix+"_0")
		c1 := emitClassifyLane(vals, g*16+4, keyFormat1234, suffix+"_1")
		c2 := emitClassifyLane(vals, g*16+8, keyFormat1234, suffix+"_2")
		c3 := emitClassifyLane(vals, g*16+12, keyFormat1234, suffix+"_3")

		keyByte := GP32()
		MOVL(c0, keyByte)
		SHLL(op.Imm(2), c1)
		ORL(c1, keyByte)
		SHLL(op.Imm(4), c2)
		ORL(c2, keyByte)
		SHLL(op.Imm(6), c3)
		ORL(c3, keyByte)
		MOVB(keyByte.As8(), op.Mem{Base: keyDst, Disp: g})

		idx := GP64()
		MOVBQZX(keyByte.As8(), idx)

		maskVec := XMM()
		MOVOU(shuffleTable.Idx(idx, 16), maskVec)

		dataVec := XMM()
		MOVOU(op.Mem{Base: vals, Disp: g * 16}, dataVec)
		PSHUFB(maskVec, dataVec)
		MOVOU(dataVec, scratch)

		length := GP64()
		MOVBQZX(lengthTable.Idx(idx, 1), length)

		scratchPtr := GP64()
		LEAQ(scratch, scratchPtr)
		copyRuntimeBytes(scratchPtr, dataDst, length, suffix)

		ADDQ(length, dataDst)
		ADDQ(length, total)
	}

	Store(total.As32(), ReturnIndex(0))
	RET()
}

func genSvb1234DecodeKernel() {
	expandTable, lengthTable := emitDecodeTables("svb1234", keyFormat1234)

	TEXT("svbDecode8_1234Asm", NOSPLIT, "func(vals *[8]uint32, keySrc *byte, dataSrc *byte) uint32")
	Doc("svbDecode8_1234Asm is the inverse of svbEncode8_1234Asm.")

	vals := Load(Param("vals"), GP64())
	keySrc := Load(Param("keySrc"), GP64())
	dataSrc := Load(Param("dataSrc"), GP64())

	total := GP64()
	XORQ(total, total)

	scratch := AllocLocal(16)

	for g := 0; g < 2; g++ {
		suffix := suffixFor("1234_dec", g)

		idx := GP64()
		MOVBQZX(op.Mem{Base: keySrc, Disp: g}, idx)

		maskVec := XMM()
		MOVOU(expandTable.Idx(idx, 16), maskVec)

		length := GP64()
		MOVBQZX(lengthTable.Idx(idx, 1), length)

		scratchPtr := GP64()
		LEAQ(scratch, scratchPtr)
		copyRuntimeBytes(dataSrc, scratchPtr, length, suffix)

		dataVec := XMM()
		MOVOU(scratch, dataVec)
		PSHUFB(maskVec, dataVec)
		MOVOU(dataVec, op.Mem{Base: vals, Disp: g * 16})

		ADDQ(length, dataSrc)
		ADDQ(length, total)
	}

	Store(total.As32(), ReturnIndex(0))
	RET()
}
