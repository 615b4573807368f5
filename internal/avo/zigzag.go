//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
	op "github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

// This file generates the SSE2 zigzag encode/decode kernels used as the
// preprocessing step for the "z"/"dz" variants. ZigZag encoding maps signed
// integers to unsigned integers so that numbers with small absolute values
// (both positive and negative) are mapped to small unsigned integers.
//
// It follows the equivalent of the following C code from
// https://lemire.me/blog/2022/11/25/making-all-your-integers-positive-with-zigzag-encoding/
// int fast_decode(unsigned int x) {
//   return (x >> 1) ^ (-(x&1));
// }
//
// unsigned int fast_encode(int x) {
//   return (2*x) ^ (x >>(sizeof(int) * 8 - 1));
// }
//
// Both kernels operate on exactly 8 elements (two XMM blocks) in place,
// matching the group size the shuffle-table kernels in svb1234.go/svb0124.go
// consume per call.

func genZigZagEncode8Kernel() {
	TEXT("zigzagEncode8Asm", NOSPLIT, "func(buf *[8]uint32)")
	Doc("zigzagEncode8Asm zigzag-encodes 8 uint32 (interpreted as int32) in place.")

	bufParam := Load(Param("buf"), GP64())
	bufBase := bufParam.(reg.GPVirtual)

	var v, s [2]reg.VecVirtual
	for i := 0; i < 2; i++ {
		v[i] = XMM()
		s[i] = XMM()
	}

	for i := 0; i < 2; i++ {
		block := op.Mem{Base: bufBase, Disp: i * 16}
		MOVO(block, v[i])

		// s = v >> 31 (arithmetic, preserves sign)
		MOVO(v[i], s[i])
		PSRAL(op.Imm(31), s[i])

		// v = (v << 1) ^ s
		PSLLL(op.Imm(1), v[i])
		PXOR(s[i], v[i])

		MOVO(v[i], block)
	}

	RET()
}

func genZigZagDecode8Kernel() {
	TEXT("zigzagDecode8Asm", NOSPLIT, "func(buf *[8]uint32)")
	Doc("zigzagDecode8Asm is the inverse of zigzagEncode8Asm, in place.")

	bufParam := Load(Param("buf"), GP64())
	bufBase := bufParam.(reg.GPVirtual)

	var v, l [2]reg.VecVirtual
	for i := 0; i < 2; i++ {
		v[i] = XMM()
		l[i] = XMM()
	}

	for i := 0; i < 2; i++ {
		block := op.Mem{Base: bufBase, Disp: i * 16}
		MOVO(block, v[i])

		// l = -(v & 1), via (v << 31) >> 31 arithmetic
		MOVO(v[i], l[i])
		PSLLL(op.Imm(31), l[i])
		PSRAL(op.Imm(31), l[i])

		// v = (v >>> 1) ^ l
		PSRLL(op.Imm(1), v[i])
		PXOR(l[i], v[i])

		MOVO(v[i], block)
	}

	RET()
}
