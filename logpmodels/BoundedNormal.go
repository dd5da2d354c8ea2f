package logpmodels

// BoundedNormal is an isotropic Gaussian that fails recoverably whenever
// any coordinate's magnitude exceeds Bound. It grounds spec.md's
// scenario #3: a density that turns a trajectory wandering outside its
// support into a divergence rather than a crash.
type BoundedNormal struct {
	dim   int
	mu    float64
	Bound float64
}

// NewBoundedNormal returns a BoundedNormal log-density over R^dim
// centered at mu, recoverably failing outside [-bound, bound] in any
// coordinate.
func NewBoundedNormal(dim int, mu, bound float64) *BoundedNormal {
	return &BoundedNormal{dim: dim, mu: mu, Bound: bound}
}

// Dim returns the dimension of this density.
func (n *BoundedNormal) Dim() int {
	return n.dim
}

// Logp returns a recoverable *OutOfBoundsError if any coordinate of
// position exceeds Bound in magnitude; otherwise it behaves like Normal.
func (n *BoundedNormal) Logp(position []float64, grad []float64) (float64, error) {
	for i, p := range position {
		if p > n.Bound || p < -n.Bound {
			return 0, &OutOfBoundsError{Coordinate: i, Value: p, Bound: n.Bound}
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
