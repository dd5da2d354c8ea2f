package collector

import (
	"math"
	"testing"

	"github.com/samuelfneumann/gonuts/nutsstate"
	"github.com/samuelfneumann/gonuts/potential"
)

func newState(pool *nutsstate.StatePool, energy float64) nutsstate.State {
	s := nutsstate.New(pool)
	s.Inner().PotentialEnergy = energy
	return s
}

func TestAcceptanceRateCollectorMean(t *testing.T) {
	pool := nutsstate.NewStatePool(1)
	c := NewAcceptanceRateCollector()

	init := newState(pool, 0)
	c.RegisterInit(init, potential.Options{})

	// end1 has the same energy as init: acceptance probability 1.
	end1 := newState(pool, 0)
	c.RegisterLeapfrog(init, end1, nil)

	// end2 has much higher energy: acceptance probability near 0.
	end2 := newState(pool, 1000)
	c.RegisterLeapfrog(init, end2, nil)

	mean := c.MeanAcceptanceRate()
	if mean <= 0 || mean >= 1 {
		t.Errorf("MeanAcceptanceRate = %v, want strictly between 0 and 1", mean)
	}

	expected := (1.0 + math.Exp(-1000)) / 2
	if math.Abs(mean-expected) > 1e-9 {
		t.Errorf("MeanAcceptanceRate = %v, want %v", mean, expected)
	}
}

func TestAcceptanceRateCollectorResetsOnInit(t *testing.T) {
	pool := nutsstate.NewStatePool(1)
	c := NewAcceptanceRateCollector()

	init := newState(pool, 0)
	c.RegisterInit(init, potential.Options{})
	c.RegisterLeapfrog(init, newState(pool, 0), nil)

	if c.MeanAcceptanceRate() == 0 {
		t.Fatal("expected a non-zero mean after one leapfrog registration")
	}

	c.RegisterInit(init, potential.Options{})
	if c.MeanAcceptanceRate() != 0 {
		t.Errorf("MeanAcceptanceRate after RegisterInit = %v, want 0", c.MeanAcceptanceRate())
	}
}

func TestStatsCollectorCountsDivergencesAndDepth(t *testing.T) {
	pool := nutsstate.NewStatePool(1)
	c := NewStatsCollector()

	init := newState(pool, 0)
	c.RegisterInit(init, potential.Options{})

	c.RegisterLeapfrog(init, newState(pool, 0), nil)
	c.RegisterLeapfrog(init, newState(pool, 0), &potential.DivergenceInfo{EnergyError: 5})
	c.RegisterDraw(init, potential.SampleInfo{Depth: 3})

	stats := c.Stats()
	if stats.Divergences != 1 {
		t.Errorf("Stats().Divergences = %v, want 1", stats.Divergences)
	}
	if stats.MaxDepthSeen != 3 {
		t.Errorf("Stats().MaxDepthSeen = %v, want 3", stats.MaxDepthSeen)
	}
}

func TestNullCollectorIsNoOp(t *testing.T) {
	pool := nutsstate.NewStatePool(1)
	var c NullCollector
	s := newState(pool, 0)

	// These must not panic; there is nothing else to assert about a
	// collector whose every hook is a no-op.
	c.RegisterInit(s, potential.Options{})
	c.RegisterLeapfrog(s, s, nil)
	c.RegisterDraw(s, potential.SampleInfo{})
}
