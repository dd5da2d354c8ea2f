// Package sampler implements the top-level draw driver and the Sampler
// façade: the loop that doubles a NutsTree until it terminates, and the
// per-chain object a caller actually constructs and drives.
package sampler

import (
	"github.com/samuelfneumann/gonuts/potential"
)

// NutsOptions configures one draw: the depth cap, the leapfrog step
// size, and the energy-error threshold beyond which a step is
// considered diverging.
type NutsOptions = potential.Options

// SampleInfo describes the outcome of one draw. See potential.SampleInfo.
type SampleInfo = potential.SampleInfo

// DefaultNutsOptions returns the typical defaults: a depth cap of 10 (so
// at most 2^10-1 leapfrog steps per draw), a step size of 0.1, and an
// energy-error divergence threshold of 1000, matching the values
// spec.md calls typical.
func DefaultNutsOptions() NutsOptions {
	return NutsOptions{
		MaxDepth:       10,
		StepSize:       0.1,
		MaxEnergyError: 1000,
	}
}

// Validate checks the preconditions on a NutsOptions: MaxDepth must not
// exceed 63 (the driver counts tree depth in a uint64 sign-compatible
// range and 2^64 steps is already absurd), and StepSize/MaxEnergyError
// must be strictly positive.
func Validate(o NutsOptions) error {
	if o.MaxDepth > 63 {
		return &Error{Op: "Validate", Err: ErrInvalidMaxDepth}
	}
	if o.StepSize <= 0 {
		return &Error{Op: "Validate", Err: ErrInvalidStepSize}
	}
	if o.MaxEnergyError <= 0 {
		return &Error{Op: "Validate", Err: ErrInvalidMaxEnergyError}
	}
	return nil
}
