package potential

import "github.com/samuelfneumann/gonuts/nutsstate"

// Options is the subset of sampler.NutsOptions the potential and
// collector layers need. It is declared here, rather than in the
// sampler package, so that potential (and anything built on it) does
// not depend on sampler, which itself depends on potential.
type Options struct {
	MaxDepth       uint64
	StepSize       float64
	MaxEnergyError float64
}

// SampleInfo describes the outcome of one draw: how deep the tree grew,
// whether it stopped because it hit the depth cap, and, if the draw
// ended in divergence, the diagnostics of that divergence.
//
// SampleInfo is declared here rather than in the sampler package for
// the same reason as Options: the collector protocol is shared by both
// the potential and sampler layers, and only one of them can own the
// type without creating an import cycle. The sampler package re-exports
// this type as sampler.SampleInfo.
type SampleInfo struct {
	Depth      uint64
	MaxDepth   bool
	Divergence *DivergenceInfo
}

// Collector is an observer notified of events during a draw: the
// initial state, every leapfrog step (including diverging ones), and
// the state finally selected. Embed NullCollector to pick and choose
// which hooks to override.
type Collector interface {
	// RegisterInit is called once per draw with the resampled initial
	// state and the options governing the draw.
	RegisterInit(state nutsstate.State, options Options)

	// RegisterLeapfrog is called once per integrator step, in the exact
	// order the integrator executes them. divergence is non-nil iff the
	// step diverged.
	RegisterLeapfrog(start, end nutsstate.State, divergence *DivergenceInfo)

	// RegisterDraw is called once per draw with the state ultimately
	// selected and its diagnostics.
	RegisterDraw(state nutsstate.State, info SampleInfo)
}

// NullCollector implements Collector with every hook a no-op. Embed it
// to pick and choose which hooks to override.
type NullCollector struct{}

func (NullCollector) RegisterInit(nutsstate.State, Options)                   {}
func (NullCollector) RegisterLeapfrog(_, _ nutsstate.State, _ *DivergenceInfo) {}
func (NullCollector) RegisterDraw(nutsstate.State, SampleInfo)                {}
