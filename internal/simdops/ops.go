// Package simdops wraps the SIMD vector kernels used by the separation
// engine. The github.com/tphakala/simd package selects AVX2/SSE or NEON
// implementations at startup and falls back to pure Go on other targets,
// so callers here never need build tags.
//
// The engine processes whole buffers in float64, so only the f64 kernel
// set is wrapped.
package simdops

import "github.com/tphakala/simd/f64"

// DotProduct returns the dot product of a and b over their common length.
func DotProduct(a, b []float64) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}

	return f64.DotProductUnsafe(a[:n], b[:n])
}

// Sum returns the sum of all elements of a.
func Sum(a []float64) float64 {
	return f64.Sum(a)
}

// Scale writes a[i] * s into dst. dst and a may be the same slice.
func Scale(dst, a []float64, s float64) {
	f64.Scale(dst, a, s)
}
