package logpmodels

// Banana is a two-dimensional, banana-shaped log-density (a smoothed
// Rosenbrock function), used to exercise the sampler on a
// non-isotropic, curved target where the U-turn criterion actually
// needs to adapt trajectory length across coordinates differently.
//
//	logp(x, y) = -x^2/20 - (y - b*(x^2 - 100))^2/20
//
// with b controlling the strength of the curvature.
type Banana struct {
	b float64
}

// NewBanana returns a Banana log-density with curvature strength b. A
// typical value is b = 0.03.
func NewBanana(b float64) *Banana {
	return &Banana{b: b}
}

// Dim always returns 2: Banana is defined only over R^2.
func (*Banana) Dim() int {
	return 2
}

// Logp writes the gradient of log p at position into grad and returns
// log p(position).
func (n *Banana) Logp(position []float64, grad []float64) (float64, error) {
	x, y := position[0], position[1]
	shifted := y - n.b*(x*x-100)

	logp := -x*x/20 - shifted*shifted/20

	// d/dx: -x/10 - shifted * (-2*b*x) / 10 = -x/10 + shifted*b*x/5
	grad[0] = -x/10 + shifted*n.b*x/5
	// d/dy: -shifted/10
	grad[1] = -shifted / 10

	return logp, nil
}
