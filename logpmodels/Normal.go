// Package logpmodels implements example LogpFunc densities used by this
// module's tests, benchmarks, and demo: an isotropic Gaussian, an
// isotropic Gaussian with a configurable bound that turns a recoverable
// error, and a gonum/mat-backed multivariate Gaussian.
package logpmodels

// Normal is an isotropic Gaussian log-density, log p(q) = -||q-mu||^2 / 2,
// matching the teacher's test density in spirit (a closed-form density
// whose gradient is cheap to check by hand) and the NormalLogp fixture
// in the original source this module is grounded on.
type Normal struct {
	dim int
	mu  float64
}

// NewNormal returns an isotropic Gaussian log-density over R^dim
// centered at mu in every coordinate.
func NewNormal(dim int, mu float64) *Normal {
	return &Normal{dim: dim, mu: mu}
}

// Dim returns the dimension of this density.
func (n *Normal) Dim() int {
	return n.dim
}

// Logp writes the gradient of log p at position into grad and returns
// log p(position).
func (n *Normal) Logp(position []float64, grad []float64) (float64, error) {
	var logp float64
	for i, p := range position {
		val := p - n.mu
		logp -= 0.5 * val * val
		grad[i] = -val
	}
	return logp, nil
}
