//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
	op "github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

// This file generates the SSE2 delta encode/decode kernels used as the
// preprocessing step for the "d"/"dz" variants.
//
// The encoder implements straight D1 differential coding (δi = xi − xi−1),
// vectorized with SSE2 as suggested by [1]. The decoder runs the
// "shift-and-add" SIMD prefix-sum tree: repeated byte shifts (PSLLDQ) and
// packed additions (PADDL) compute inclusive scans four integers at a time.
// Unlike a standalone integer codec, callers here always seed the chain
// with the previous group's last value rather than zero, since encoding
// is chunked into independent 8-element groups that must stay consistent
// with a scalar tail processed in the same pass.
//
// [1] D. Lemire, L. Boytsov, and N. Kurz (2016): "SIMD compression and the intersection of sorted integers",
// Software: Practice and Experience, vol. 46, no. 6, pp. 723–749, 2016, doi: 10.1002/spe.2326.

func genDeltaEncode8Kernel() {
	TEXT("deltaEncode8Asm", NOSPLIT, "func(buf *[8]uint32, seed uint32) uint32")
	Doc("deltaEncode8Asm delta-encodes 8 uint32 values in place against seed and")
	Doc("returns the last original (pre-transform) value, the seed for the next group.")

	bufParam := Load(Param("buf"), GP64())
	bufBase := bufParam.(reg.GPVirtual)
	seed := Load(Param("seed"), GP32())

	prevVec := XMM()
	PXOR(prevVec, prevVec)
	MOVD(seed, prevVec)

	var curr, shifted, diff [2]reg.VecVirtual
	for i := 0; i < 2; i++ {
		curr[i] = XMM()
		shifted[i] = XMM()
		diff[i] = XMM()
	}

	for i := 0; i < 2; i++ {
		block := op.Mem{Base: bufBase, Disp: i * 16}
		MOVO(block, curr[i])

		MOVO(curr[i], shifted[i])
		PSLLDQ(op.Imm(4), shifted[i])
		POR(prevVec, shifted[i])

		MOVO(curr[i], diff[i])
		PSUBL(shifted[i], diff[i])
		MOVO(diff[i], block)

		// carry the last original lane of this block into the next one
		MOVO(curr[i], prevVec)
		PSRLDQ(op.Imm(12), prevVec)
	}

	lastOriginal := GP32()
	MOVD(prevVec, lastOriginal)
	Store(lastOriginal, ReturnIndex(0))
	RET()
}

func genDeltaDecode8Kernel() {
	TEXT("deltaDecode8Asm", NOSPLIT, "func(buf *[8]uint32, seed uint32) uint32")
	Doc("deltaDecode8Asm is the inverse of deltaEncode8Asm: it decodes 8 deltas in")
	Doc("place against seed and returns the last decoded value.")

	bufParam := Load(Param("buf"), GP64())
	bufBase := bufParam.(reg.GPVirtual)
	seed := Load(Param("seed"), GP32())

	prevVec := XMM()
	PXOR(prevVec, prevVec)
	MOVD(seed, prevVec)
	// broadcast the seed so every lane of the first block's prefix sum gets it
	PSHUFL(op.Imm(0x00), prevVec, prevVec)

	var v, t [2]reg.VecVirtual
	for i := 0; i < 2; i++ {
		v[i] = XMM()
		t[i] = XMM()
	}

	for i := 0; i < 2; i++ {
		block := op.Mem{Base: bufBase, Disp: i * 16}
		MOVO(block, v[i])

		// Kogge-Stone prefix sum within the block
		MOVO(v[i], t[i])
		PSLLDQ(op.Imm(4), t[i])
		PADDL(t[i], v[i])

		MOVO(v[i], t[i])
		PSLLDQ(op.Imm(8), t[i])
		PADDL(t[i], v[i])

		PADDL(prevVec, v[i])
		MOVO(v[i], block)

		// broadcast the block's last lane to seed the next block
		MOVO(v[i], prevVec)
		PSHUFL(op.Imm(0xFF), prevVec, prevVec)
	}

	lastDecoded := GP32()
	MOVD(prevVec, lastDecoded)
	Store(lastDecoded, ReturnIndex(0))
	RET()
}
