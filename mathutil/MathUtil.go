// Package mathutil implements small numerical kernels shared by the
// sampler, mass matrix, and tree packages: a numerically stable
// log-sum-exp for two values, and a dot product.
package mathutil

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// LogAddExp returns log(exp(a) + exp(b)), computed so that it is
// accurate even when a and b are far apart or very negative.
//
// LogAddExp(a, b) == LogAddExp(b, a), and the result is always
// >= max(a, b) for finite a, b.
func LogAddExp(a, b float64) float64 {
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}

	if a > b {
		return a + math.Log1p(math.Exp(b-a))
	}
	return b + math.Log1p(math.Exp(a-b))
}

// Dot returns the dot product of a and b, which must have equal length.
func Dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}
