package potential

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gonuts/massmatrix"
	"github.com/samuelfneumann/gonuts/nutsstate"
)

// EuclideanPotential binds a log-density to a mass matrix and implements
// the leapfrog integrator over the resulting Hamiltonian
//
//	H(q, p) = -logp(q) + 0.5 p^T M^-1 p.
//
// This follows the newer of the two designs found in the original Rust
// source history (see DESIGN.md's Open Questions): divergence
// construction happens internally, inside Leapfrog, rather than being
// threaded back out to the caller.
type EuclideanPotential struct {
	Logp LogpFunc
	Mass massmatrix.MassMatrix
}

// New returns a EuclideanPotential binding logp to mass.
func New(logp LogpFunc, mass massmatrix.MassMatrix) *EuclideanPotential {
	return &EuclideanPotential{Logp: logp, Mass: mass}
}

// InitState allocates a state from pool, writes q0 into its position,
// and computes its gradient and potential energy. It returns a
// non-recoverable error (never a divergence) if logp fails at q0: there
// is no trajectory yet to diverge from.
func (h *EuclideanPotential) InitState(pool *nutsstate.StatePool, q0 []float64) (nutsstate.State, error) {
	state := nutsstate.New(pool)
	inner := state.Inner()
	copy(inner.Q, q0)

	logp, err := h.Logp.Logp(inner.Q, inner.Grad)
	if err != nil {
		state.Release()
		return nutsstate.State{}, err
	}
	inner.PotentialEnergy = -logp
	return state, nil
}

// RandomizeMomentum resamples state's momentum from the mass matrix,
// refreshes velocity and kinetic energy, resets the state's trajectory
// index to 0, and seeds its running momentum sum with the fresh
// momentum.
func (h *EuclideanPotential) RandomizeMomentum(state nutsstate.State, rng *rand.Rand) {
	inner := state.Inner()
	h.Mass.RandomizeMomentum(inner, rng)
	h.Mass.UpdateVelocity(inner)
	h.Mass.UpdateKineticEnergy(inner)
	inner.IdxInTrajectory = 0
	copy(inner.PSum, inner.P)
}
