//go:build !amd64 || noasm

package streamvbyte

// No vector kernels on this build configuration; the dispatch vars in
// dispatch.go stay pointed at the scalar implementations and
// simdAvailable stays false.
