package potential

import (
	"math"

	"github.com/samuelfneumann/gonuts/nutsstate"
)

// Direction is the side of the trajectory a leapfrog step, or a tree
// doubling, extends.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// sign returns +1 for Forward and -1 for Backward.
func (d Direction) sign() float64 {
	if d == Forward {
		return 1
	}
	return -1
}

// NonRecoverableError is returned by Leapfrog when the bound LogpFunc
// fails with an error that does not implement LogpError, or that
// implements it but reports Recoverable() == false. It wraps the
// original error and aborts the draw; unlike DivergenceInfo it is a
// genuine sampler failure with no sample to report.
type NonRecoverableError struct {
	Err error
}

func (e *NonRecoverableError) Error() string {
	return "nuts: non-recoverable logp error: " + e.Err.Error()
}

func (e *NonRecoverableError) Unwrap() error {
	return e.Err
}

// Leapfrog performs one symplectic leapfrog step of size options.StepSize in
// the given direction, starting from start, under the Hamiltonian whose
// baseline energy for divergence testing is initialEnergy.
//
// On success it returns a fresh State allocated from pool. On
// divergence — a recoverable LogpFunc error, or an energy error that is
// non-finite or exceeds options.MaxEnergyError in magnitude — it returns
// a DivergenceInfo and releases its scratch state back to the pool.
// Both outcomes notify collector exactly once, matching the order the
// integrator executes steps. A non-recoverable LogpFunc error is
// returned as *NonRecoverableError and aborts the draw.
func (h *EuclideanPotential) Leapfrog(
	pool *nutsstate.StatePool,
	start nutsstate.State,
	dir Direction,
	initialEnergy float64,
	options Options,
	collector Collector,
) (nutsstate.State, *DivergenceInfo, error) {
	startInner := start.Inner()
	out := nutsstate.New(pool)
	outInner := out.Inner()

	epsilon := dir.sign() * options.StepSize

	// 1. Half-kick in momentum.
	for i := range outInner.P {
		outInner.P[i] = startInner.P[i] + 0.5*epsilon*startInner.Grad[i]
	}

	// 2. Refresh velocity from the half-kicked momentum.
	h.Mass.UpdateVelocity(outInner)

	// 3. Drift in position.
	for i := range outInner.Q {
		outInner.Q[i] = startInner.Q[i] + epsilon*outInner.V[i]
	}

	// 4. Recompute gradient and potential energy at the new position.
	logp, err := h.Logp.Logp(outInner.Q, outInner.Grad)
	if err != nil {
		if lerr, ok := err.(LogpError); !ok || !lerr.Recoverable() {
			out.Release()
			return nutsstate.State{}, nil, &NonRecoverableError{Err: err}
		}

		div := &DivergenceInfo{
			StartPosition: append([]float64(nil), startInner.Q...),
			EndPosition:   append([]float64(nil), outInner.Q...),
			EnergyError:   math.NaN(),
			LogpErr:       err,
		}
		collector.RegisterLeapfrog(start, out, div)
		out.Release()
		return nutsstate.State{}, div, nil
	}
	outInner.PotentialEnergy = -logp

	// 5. Half-kick in momentum.
	for i := range outInner.P {
		outInner.P[i] += 0.5 * epsilon * outInner.Grad[i]
	}

	// 6. Refresh velocity and kinetic energy.
	h.Mass.UpdateVelocity(outInner)
	h.Mass.UpdateKineticEnergy(outInner)

	// 7. Advance the trajectory index.
	sign := int64(1)
	if dir == Backward {
		sign = -1
	}
	outInner.IdxInTrajectory = startInner.IdxInTrajectory + sign

	// 8. Accumulate the running momentum sum in the direction of travel.
	if dir == Forward {
		for i := range outInner.PSum {
			outInner.PSum[i] = startInner.PSum[i] + outInner.P[i]
		}
	} else {
		for i := range outInner.PSum {
			outInner.PSum[i] = startInner.PSum[i] - outInner.P[i]
		}
	}

	// 9. Test the energy error against the divergence threshold.
	energyError := outInner.Energy() - initialEnergy
	if math.IsNaN(energyError) || math.IsInf(energyError, 0) || math.Abs(energyError) > options.MaxEnergyError {
		div := &DivergenceInfo{
			StartPosition: append([]float64(nil), startInner.Q...),
			EndPosition:   append([]float64(nil), outInner.Q...),
			EnergyError:   energyError,
		}
		collector.RegisterLeapfrog(start, out, div)
		out.Release()
		return nutsstate.State{}, div, nil
	}

	collector.RegisterLeapfrog(start, out, nil)
	return out, nil, nil
}
