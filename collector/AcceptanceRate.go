// Package collector implements the built-in Collector observers: a
// running mean of the Metropolis acceptance probability seen during a
// draw, and a StatsCollector that composes it with a divergence counter
// and a maximum-tree-depth tracker.
package collector

import (
	"math"

	"github.com/samuelfneumann/gonuts/nutsstate"
	"github.com/samuelfneumann/gonuts/potential"
)

// runningMean is an online mean accumulator, reset at the start of each
// draw.
type runningMean struct {
	sum   float64
	count uint64
}

func (m *runningMean) add(value float64) {
	m.sum += value
	m.count++
}

func (m *runningMean) current() float64 {
	if m.count == 0 {
		return 0
	}
	return m.sum / float64(m.count)
}

func (m *runningMean) reset() {
	m.sum = 0
	m.count = 0
}

// AcceptanceRateCollector accumulates the running mean of
// exp(log_acceptance(end, initialEnergy)) over every leapfrog step of
// the current draw, resetting on each RegisterInit.
type AcceptanceRateCollector struct {
	potential.NullCollector

	initialEnergy float64
	mean          runningMean
}

// NewAcceptanceRateCollector returns a ready-to-use
// AcceptanceRateCollector.
func NewAcceptanceRateCollector() *AcceptanceRateCollector {
	return &AcceptanceRateCollector{}
}

// RegisterInit resets the running mean and records the draw's initial
// energy as the acceptance-probability baseline.
func (c *AcceptanceRateCollector) RegisterInit(state nutsstate.State, _ potential.Options) {
	c.initialEnergy = state.Energy()
	c.mean.reset()
}

// RegisterLeapfrog adds this step's acceptance probability to the
// running mean, whether or not the step diverged.
func (c *AcceptanceRateCollector) RegisterLeapfrog(_, end nutsstate.State, _ *potential.DivergenceInfo) {
	c.mean.add(math.Exp(end.LogAcceptanceProbability(c.initialEnergy)))
}

// MeanAcceptanceRate returns the running mean accumulated so far.
func (c *AcceptanceRateCollector) MeanAcceptanceRate() float64 {
	return c.mean.current()
}
