package streamvbyte

// Package-level dispatch variables, reassigned once at init time on amd64
// builds that have the required CPU features (simd_amd64.go). Every other
// build configuration (simd_fallback.go, or amd64 without SSSE3) leaves
// these pointed at the portable implementations in groups_scalar.go, so the encode/decode
// paths in scalar.go, variants.go and transpose.go never need to branch on
// simdAvailable themselves; they just call through these vars.
var (
	zigzagEncodeGroup = zigzagEncodeGroupScalar
	zigzagDecodeGroup = zigzagDecodeGroupScalar
	deltaEncodeGroup  = deltaEncodeGroupScalar
	deltaDecodeGroup  = deltaDecodeGroupScalar
	encodeGroup8      = encodeGroup8Scalar
	decodeGroup8      = decodeGroup8Scalar
)

// simdAvailable reports whether the group dispatch vars above point at
// vector kernels. It records the result of the init-time CPU feature
// check; neither the encode/decode code nor the tests read it (the tests
// compare paths by swapping the dispatch vars directly).
var simdAvailable bool
