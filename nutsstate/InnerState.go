// Package nutsstate implements the trajectory point carried through a
// NUTS tree (InnerState), a pool-backed owning handle to one (State),
// and the generalized U-turn termination criterion.
package nutsstate

// InnerState is a single point on a Hamiltonian trajectory: a position,
// its conjugate momentum, the momentum's image under the mass matrix
// (velocity), the log-density gradient at the position, the running sum
// of momenta accrued over the subtree rooted at this state, the
// potential/kinetic energy at this point, and this state's signed
// offset from the trajectory's origin.
type InnerState struct {
	Dim int

	Q    []float64 // position
	P    []float64 // momentum
	V    []float64 // velocity, M^-1 P
	Grad []float64 // gradient of logp at Q
	PSum []float64 // running sum of momenta across the subtree

	PotentialEnergy float64
	KineticEnergy   float64

	IdxInTrajectory int64
}

// newInnerState allocates a zeroed InnerState of the given dimension.
func newInnerState(dim int) *InnerState {
	return &InnerState{
		Dim:  dim,
		Q:    make([]float64, dim),
		P:    make([]float64, dim),
		V:    make([]float64, dim),
		Grad: make([]float64, dim),
		PSum: make([]float64, dim),
	}
}

// reset zeros an InnerState in place so it can be reused from the pool
// without reallocating its backing slices.
func (s *InnerState) reset() {
	for i := 0; i < s.Dim; i++ {
		s.Q[i] = 0
		s.P[i] = 0
		s.V[i] = 0
		s.Grad[i] = 0
		s.PSum[i] = 0
	}
	s.PotentialEnergy = 0
	s.KineticEnergy = 0
	s.IdxInTrajectory = 0
}

// copyFrom overwrites s with a deep copy of the fields of other. s and
// other must share the same Dim.
func (s *InnerState) copyFrom(other *InnerState) {
	copy(s.Q, other.Q)
	copy(s.P, other.P)
	copy(s.V, other.V)
	copy(s.Grad, other.Grad)
	copy(s.PSum, other.PSum)
	s.PotentialEnergy = other.PotentialEnergy
	s.KineticEnergy = other.KineticEnergy
	s.IdxInTrajectory = other.IdxInTrajectory
}

// Energy returns the total Hamiltonian energy at this state, the sum of
// potential and kinetic energy.
func (s *InnerState) Energy() float64 {
	return s.PotentialEnergy + s.KineticEnergy
}

// LogAcceptanceProbability returns min(0, initialEnergy - s.Energy()),
// the log of the Metropolis acceptance weight this state contributes
// relative to a trajectory with the given initial energy.
func (s *InnerState) LogAcceptanceProbability(initialEnergy float64) float64 {
	diff := initialEnergy - s.Energy()
	if diff < 0 {
		return diff
	}
	return 0
}
