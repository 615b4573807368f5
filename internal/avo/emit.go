//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
	op "github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

func suffixFor(base string, group int) string {
	if group == 0 {
		return base
	}
	return base + "2"
}

// emitEncodeTables declares and fills the 256x16 shuffle-mask table and
// the 256-entry total-length table an encode kernel looks up by its
// assembled key byte, returning handles usable as PSHUFB/MOVOU operands.
func emitEncodeTables(namePrefix string, kf keyFormat) (shuffle, length op.Mem) {
	shuffle = GLOBL(namePrefix+"ShuffleTable", RODATA|NOPTR)
	for keyByte := 0; keyByte < 256; keyByte++ {
		mask := groupShuffleMask(codesFromKeyByte(keyByte), kf)
		for b, v := range mask {
			DATA(keyByte*16+b, U8(v))
		}
	}

	length = GLOBL(namePrefix+"LengthTable", RODATA|NOPTR)
	for keyByte := 0; keyByte < 256; keyByte++ {
		DATA(keyByte, U8(byte(groupLength(codesFromKeyByte(keyByte), kf))))
	}
	return shuffle, length
}

// emitDecodeTables is emitEncodeTables' counterpart for decode: the first
// table scatters compacted payload bytes back out to 4 lanes instead of
// compacting them.
func emitDecodeTables(namePrefix string, kf keyFormat) (expand, length op.Mem) {
	expand = GLOBL(namePrefix+"ExpandTable", RODATA|NOPTR)
	for keyByte := 0; keyByte < 256; keyByte++ {
		mask := groupExpandMask(codesFromKeyByte(keyByte), kf)
		for b, v := range mask {
			DATA(keyByte*16+b, U8(v))
		}
	}

	length = GLOBL(namePrefix+"LengthTable", RODATA|NOPTR)
	for keyByte := 0; keyByte < 256; keyByte++ {
		DATA(keyByte, U8(byte(groupLength(codesFromKeyByte(keyByte), kf))))
	}
	return expand, length
}

// emitClassifyLane scalar-classifies the uint32 at base+disp into a 0..3
// code for the given key format and returns it in a fresh GP32. Byte
// length is floor(bsr(v)/8)+1 for a nonzero value; the 1234 format's code
// is length-1. The 0124 format uses code 0 for zero and codes 1, 2 and 3
// for values that fit 1, 2 and 4 bytes (a 3-byte value takes 4).
func emitClassifyLane(base reg.GPVirtual, disp int, kf keyFormat, labelSuffix string) reg.GPVirtual {
	val := GP32()
	MOVL(op.Mem{Base: base, Disp: disp}, val)

	code := GP32()

	if kf == keyFormat1234 {
		// length = floor(bsr(v)/8)+1, code = length-1 = floor(bsr(v)/8);
		// v == 0 has no set bit, and floor/8 of a forced bsr result of 0
		// happens to land on the same code (0) that zero needs here.
		pos := GP32()
		BSRL(val, pos)
		nonzero := "classify_nonzero_" + labelSuffix
		done := "classify_done_" + labelSuffix
		JNZ(op.LabelRef(nonzero))
		XORL(pos, pos)
		JMP(op.LabelRef(done))
		Label(nonzero)
		SHRL(op.Imm(3), pos)
		Label(done)
		MOVL(pos, code)
		return code
	}

	// 0124: code 0 only for v == 0, otherwise code 1, 2 or 3 for a
	// nonzero value that fits 1, 2 or 4 bytes (unsigned compares).
	isZero := "classify_zero_" + labelSuffix
	oneByte := "classify_one_" + labelSuffix
	twoByte := "classify_two_" + labelSuffix
	fourByte := "classify_four_" + labelSuffix
	done := "classify_done_0124_" + labelSuffix

	TESTL(val, val)
	JZ(op.LabelRef(isZero))
	CMPL(val, op.Imm(0xff))
	JBE(op.LabelRef(oneByte))
	CMPL(val, op.Imm(0xffff))
	JBE(op.LabelRef(twoByte))
	JMP(op.LabelRef(fourByte))

	Label(isZero)
	MOVL(op.Imm(0), code)
	JMP(op.LabelRef(done))
	Label(oneByte)
	MOVL(op.Imm(1), code)
	JMP(op.LabelRef(done))
	Label(twoByte)
	MOVL(op.Imm(2), code)
	JMP(op.LabelRef(done))
	Label(fourByte)
	MOVL(op.Imm(3), code)
	Label(done)
	return code
}

// copyRuntimeBytes copies a runtime-determined (0..16) byte count from src
// to dst using a simple counted loop.
func copyRuntimeBytes(src, dst reg.GPVirtual, count reg.GPVirtual, labelSuffix string) {
	i := GP64()
	XORQ(i, i)
	count64 := GP64()
	MOVLQZX(count.As32(), count64)

	loop := "copy_loop_" + labelSuffix
	done := "copy_done_" + labelSuffix
	Label(loop)
	CMPQ(i, count64)
	JGE(op.LabelRef(done))
	b := GP8()
	MOVB(op.Mem{Base: src, Index: i, Scale: 1}, b)
	MOVB(b, op.Mem{Base: dst, Index: i, Scale: 1})
	INCQ(i)
	JMP(op.LabelRef(loop))
	Label(done)
}
