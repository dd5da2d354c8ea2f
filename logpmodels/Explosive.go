package logpmodels

import "math"

// Explosive is an isotropic Gaussian that returns +Inf, rather than an
// error, once any coordinate's magnitude exceeds Bound. It grounds
// spec.md's scenario #4: a density whose numerical blow-up must be
// caught by the non-finite-energy check in the leapfrog integrator,
// since no error value is ever returned to catch it earlier.
type Explosive struct {
	dim   int
	mu    float64
	Bound float64
}

// NewExplosive returns an Explosive log-density over R^dim centered at
// mu, returning +Inf once any coordinate exceeds bound in magnitude.
func NewExplosive(dim int, mu, bound float64) *Explosive {
	return &Explosive{dim: dim, mu: mu, Bound: bound}
}

// Dim returns the dimension of this density.
func (n *Explosive) Dim() int {
	return n.dim
}

// Logp returns +Inf once any coordinate of position exceeds Bound in
// magnitude; otherwise it behaves like Normal.
func (n *Explosive) Logp(position []float64, grad []float64) (float64, error) {
	for _, p := range position {
		if p > n.Bound || p < -n.Bound {
			for j := range grad {
				grad[j] = 0
			}
			return math.Inf(1), nil
		}
	}

	var logp float64
	for i, p := range position {
		val := p - n.mu
		logp -= 0.5 * val * val
		grad[i] = -val
	}
	return logp, nil
}
