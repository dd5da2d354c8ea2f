// Package massmatrix implements the kinetic-energy term of the
// Hamiltonian used by the sampler: the mapping between momentum and
// velocity, the kinetic energy it induces, and the distribution momenta
// are resampled from between draws.
package massmatrix

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gonuts/nutsstate"
)

// MassMatrix maps momentum to velocity, computes the kinetic
// energy of a state, and draws fresh momenta for the start of a draw.
// Implementations mutate the P, V, and KineticEnergy fields of the
// InnerState passed to them; they never read or write Q or Grad.
type MassMatrix interface {
	// UpdateVelocity sets state.V from state.P.
	UpdateVelocity(state *nutsstate.InnerState)

	// UpdateKineticEnergy sets state.KineticEnergy from state.P and
	// state.V.
	UpdateKineticEnergy(state *nutsstate.InnerState)

	// RandomizeMomentum draws a fresh state.P from a Gaussian with
	// covariance M, the mass matrix.
	RandomizeMomentum(state *nutsstate.InnerState, rng *rand.Rand)
}
