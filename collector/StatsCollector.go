package collector

import (
	"github.com/samuelfneumann/gonuts/nutsstate"
	"github.com/samuelfneumann/gonuts/potential"
)

// Stats summarizes a single draw for the caller: the mean Metropolis
// acceptance probability over the draw's leapfrog steps, how many of
// those steps diverged, and the deepest tree depth reached so far this
// draw (reset on the next RegisterInit).
//
// mean_acceptance_rate alone, as in the original Rust source, is enough to
// satisfy spec.md's scenario #6; Divergences and MaxDepthSeen are this
// module's domain supplement, since a real driver wants more than one
// statistic per draw (see SPEC_FULL.md).
type Stats struct {
	MeanAcceptanceRate float64
	Divergences        int
	MaxDepthSeen       uint64
}

// StatsCollector composes AcceptanceRateCollector with a divergence
// counter and a max-tree-depth tracker.
type StatsCollector struct {
	acceptanceRate AcceptanceRateCollector
	divergences    int
	maxDepth       uint64
}

// NewStatsCollector returns a ready-to-use StatsCollector.
func NewStatsCollector() *StatsCollector {
	return &StatsCollector{}
}

// RegisterInit resets every accumulated statistic for the new draw.
func (c *StatsCollector) RegisterInit(state nutsstate.State, options potential.Options) {
	c.acceptanceRate.RegisterInit(state, options)
	c.divergences = 0
	c.maxDepth = 0
}

// RegisterLeapfrog forwards to the acceptance-rate accumulator and
// counts the step as a divergence when applicable.
func (c *StatsCollector) RegisterLeapfrog(start, end nutsstate.State, divergence *potential.DivergenceInfo) {
	c.acceptanceRate.RegisterLeapfrog(start, end, divergence)
	if divergence != nil {
		c.divergences++
	}
}

// RegisterDraw records the final tree depth reached.
func (c *StatsCollector) RegisterDraw(state nutsstate.State, info potential.SampleInfo) {
	if info.Depth > c.maxDepth {
		c.maxDepth = info.Depth
	}
}

// Stats returns a snapshot of the statistics accumulated for the
// current draw.
func (c *StatsCollector) Stats() Stats {
	return Stats{
		MeanAcceptanceRate: c.acceptanceRate.MeanAcceptanceRate(),
		Divergences:        c.divergences,
		MaxDepthSeen:       c.maxDepth,
	}
}
