//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
	op "github.com/mmcloughlin/avo/operand"
)

// This file generates the "0124" key-format group kernels. It is
// structurally identical to svb1234.go; the only difference is the
// classify/length/shuffle tables, which favor omitting zero values
// entirely (code 0, length 0) over the 1234 format's uniform 1-byte
// minimum, at the cost of never representing a 3-byte value compactly.

func genSvb0124EncodeKernel() {
	shuffleTable, lengthTable := emitEncodeTables("svb0124", keyFormat0124)

	TEXT("svbEncode8_0124Asm", NOSPLIT, "func(keyDst *byte, dataDst *byte, vals *[8]uint32) uint32")
	Doc("svbEncode8_0124Asm encodes 8 values under the 0124 key format into")
	Doc("2 key bytes and a variable-length payload, returning the payload length.")

	keyDst := Load(Param("keyDst"), GP64())
	dataDst := Load(Param("dataDst"), GP64())
	vals := Load(Param("vals"), GP64())

	total := GP64()
	XORQ(total, total)

	scratch := AllocLocal(16)

	for g := 0; g < 2; g++ {
		suffix := suffixFor("0124_enc", g)

		c0 := emitClassifyLane(vals, g*16+0, keyFormat0124, suffix+"_0")
		c1 := emitClassifyLane(vals, g*16+4, keyFormat0124, suffix+"_1")
		c2 := emitClassifyLane(vals, g*16+8, keyFormat0124, suffix+"_2")
		c3 := emitClassifyLane(vals, g*16+12, keyFormat0124, suffix+"_3")

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

func genSvb0124DecodeKernel() {
	expandTable, lengthTable := emitDecodeTables("svb0124", keyFormat0124)

	TEXT("svbDecode8_0124Asm", NOSPLIT, "func(vals *[8]uint32, keySrc *byte, dataSrc *byte) uint32")
	Doc("svbDecode8_0124Asm is the inverse of svbEncode8_0124Asm.")

	vals := Load(Param("vals"), GP64())
	keySrc := Load(Param("keySrc"), GP64())
	dataSrc := Load(Param("dataSrc"), GP64())

	total := GP64()
	XORQ(total, total)

	scratch := AllocLocal(16)

	for g := 0; g < 2; g++ {
		suffix := suffixFor("0124_dec", g)

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
