package massmatrix

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/gonuts/mathutil"
	"github.com/samuelfneumann/gonuts/nutsstate"
)

// Unit is the identity mass matrix, M = I. Velocity equals momentum and
// momenta are resampled as i.i.d. standard normals.
type Unit struct{}

// NewUnit returns a Unit mass matrix.
func NewUnit() Unit {
	return Unit{}
}

// UpdateVelocity sets state.V = state.P.
func (Unit) UpdateVelocity(state *nutsstate.InnerState) {
	copy(state.V, state.P)
}

// UpdateKineticEnergy sets state.KineticEnergy = 0.5 * Sum(P[i]*V[i]).
func (Unit) UpdateKineticEnergy(state *nutsstate.InnerState) {
	state.KineticEnergy = 0.5 * mathutil.Dot(state.P, state.V)
}

// RandomizeMomentum draws each coordinate of state.P i.i.d. from a
// standard normal distribution.
func (Unit) RandomizeMomentum(state *nutsstate.InnerState, rng *rand.Rand) {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
	for i := range state.P {
		state.P[i] = dist.Rand()
	}
}
