package massmatrix

import (
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/gonuts/mathutil"
	"github.com/samuelfneumann/gonuts/nutsstate"
)

// Diagonal is a diagonal mass matrix M = diag(m). Velocity is the
// elementwise quotient of momentum by the diagonal, and momenta are
// resampled independently per coordinate from N(0, m[i]).
//
// This fills in the implementation the original Rust source left as
// unfinished (see DESIGN.md): the contract is velocity by elementwise
// division, kinetic energy from P.V, and momentum ~ N(0, diag).
type Diagonal struct {
	diag    []float64
	invDiag []float64
}

// NewDiagonal returns a Diagonal mass matrix with the given diagonal.
// diag must contain only strictly positive entries.
func NewDiagonal(diag []float64) Diagonal {
	inv := make([]float64, len(diag))
	for i, m := range diag {
		inv[i] = 1 / m
	}
	d := make([]float64, len(diag))
	copy(d, diag)
	return Diagonal{diag: d, invDiag: inv}
}

// UpdateVelocity sets state.V[i] = state.P[i] * invDiag[i].
func (m Diagonal) UpdateVelocity(state *nutsstate.InnerState) {
	for i := range state.P {
		state.V[i] = state.P[i] * m.invDiag[i]
	}
}

// UpdateKineticEnergy sets state.KineticEnergy = 0.5 * Sum(P[i]*V[i]).
func (Diagonal) UpdateKineticEnergy(state *nutsstate.InnerState) {
	state.KineticEnergy = 0.5 * mathutil.Dot(state.P, state.V)
}

// RandomizeMomentum draws state.P[i] ~ N(0, diag[i]) independently per
// coordinate. The diagonal covariance makes independent univariate
// normals exact, so no full multivariate-normal sampler is needed.
func (m Diagonal) RandomizeMomentum(state *nutsstate.InnerState, rng *rand.Rand) {
	for i := range state.P {
		dist := distuv.Normal{Mu: 0, Sigma: math.Sqrt(m.diag[i]), Src: rng}
		state.P[i] = dist.Rand()
	}
}
