//go:build avogen
// +build avogen

package main

import (
	"flag"
	"strings"

	. "github.com/mmcloughlin/avo/build"
)

var (
	component = flag.String("component", "all", "component to generate")
)

// main emits the zigzag, delta and group shuffle kernels so go:generate
// stays simple.
func main() {
	flag.Parse()

	comp := strings.ToLower(*component)

	Package("github.com/go-streamvbyte/streamvbyte")
	ConstraintExpr("amd64")
	ConstraintExpr("!noasm")

	if comp == "zigzag" || comp == "all" {
		genZigZagEncode8Kernel()
		genZigZagDecode8Kernel()
	}

	if comp == "delta" || comp == "all" {
		genDeltaEncode8Kernel()
		genDeltaDecode8Kernel()
	}

	if comp == "svb1234" || comp == "all" {
		genSvb1234EncodeKernel()
		genSvb1234DecodeKernel()
	}

	if comp == "svb0124" || comp == "all" {
		genSvb0124EncodeKernel()
		genSvb0124DecodeKernel()
	}

	Generate()
}
