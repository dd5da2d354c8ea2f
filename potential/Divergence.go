package potential

import "fmt"

// DivergenceInfo records why a leapfrog step diverged: either the
// log-density raised a recoverable error, or the resulting energy error
// exceeded the configured threshold (or was non-finite). Both the start
// and end positions of the offending step are kept for diagnostics.
type DivergenceInfo struct {
	StartPosition []float64
	EndPosition   []float64

	// EnergyError is end.Energy() - initialEnergy. It may be NaN or
	// infinite; that is itself a cause for divergence.
	EnergyError float64

	// LogpErr is non-nil when the divergence was caused by a
	// recoverable LogpFunc error rather than by the energy-error
	// threshold.
	LogpErr error
}

// Error implements the error interface so DivergenceInfo can be threaded
// through ordinary Go error-handling paths where convenient, even though
// a divergence is not itself a sampler failure (see DESIGN.md).
func (d *DivergenceInfo) Error() string {
	if d.LogpErr != nil {
		return fmt.Sprintf("divergence: logp error: %v", d.LogpErr)
	}
	return fmt.Sprintf("divergence: energy error %g exceeds threshold", d.EnergyError)
}
