package sampler

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gonuts/collector"
	"github.com/samuelfneumann/gonuts/massmatrix"
	"github.com/samuelfneumann/gonuts/nutsstate"
	"github.com/samuelfneumann/gonuts/potential"
)

// Sampler is a single Markov chain: a NUTS draw driver bound to one
// log-density, one mass matrix, one pooled state, and one PRNG stream.
// A Sampler is not safe for concurrent use; run one per goroutine for
// parallel chains.
type Sampler struct {
	potential *potential.EuclideanPotential
	pool      *nutsstate.StatePool
	options   NutsOptions
	rng       *rand.Rand
	stats     *collector.StatsCollector
	dim       int

	state      nutsstate.State
	stateValid bool
}

// New returns a Sampler over logp with a unit mass matrix, seeded PRNG,
// and the given depth cap and step size. MaxEnergyError defaults to
// 1000; use NewWithOptions to set it explicitly.
func New(logp potential.LogpFunc, seed uint64, maxdepth uint64, stepSize float64) (*Sampler, error) {
	return NewWithOptions(logp, massmatrix.NewUnit(), seed, NutsOptions{
		MaxDepth:       maxdepth,
		StepSize:       stepSize,
		MaxEnergyError: 1000,
	})
}

// NewWithOptions returns a Sampler over logp with an explicit mass
// matrix and full NutsOptions.
func NewWithOptions(logp potential.LogpFunc, mass massmatrix.MassMatrix, seed uint64, options NutsOptions) (*Sampler, error) {
	if err := Validate(options); err != nil {
		return nil, err
	}

	dim := logp.Dim()
	pool := nutsstate.NewStatePool(dim)
	pot := potential.New(logp, mass)

	return &Sampler{
		potential: pot,
		pool:      pool,
		options:   options,
		rng:       rand.New(rand.NewSource(seed)),
		stats:     collector.NewStatsCollector(),
		dim:       dim,
	}, nil
}

// Dim returns the dimension of the space this sampler draws from.
func (s *Sampler) Dim() int {
	return s.dim
}

// SetPosition sets the chain's current position to q0, recomputing its
// gradient and potential energy. q0 must have length Dim(). A
// non-recoverable LogpFunc error at q0 is returned as-is; there is no
// trajectory yet for it to be a divergence relative to.
func (s *Sampler) SetPosition(q0 []float64) error {
	if len(q0) != s.dim {
		return &Error{Op: "SetPosition", Err: ErrDimMismatch}
	}

	next, err := s.potential.InitState(s.pool, q0)
	if err != nil {
		return err
	}

	if s.stateValid {
		s.state.Release()
	}
	s.state = next
	s.stateValid = true
	return nil
}

// Draw resamples momentum at the current position and runs one NUTS
// draw, returning the new position, diagnostics about how the draw
// terminated, and running statistics over the draw's leapfrog steps.
//
// A non-nil error means a non-recoverable LogpFunc failure aborted the
// draw; no position is returned, and SetPosition must be called again
// before the next Draw.
func (s *Sampler) Draw() ([]float64, SampleInfo, collector.Stats, error) {
	if !s.stateValid {
		return nil, SampleInfo{}, collector.Stats{}, &Error{Op: "Draw", Err: errNoPosition}
	}

	s.potential.RandomizeMomentum(s.state, s.rng)

	init := s.state
	s.stateValid = false // init is consumed by drawOnce below

	result, info, err := drawOnce(s.pool, init, s.rng, s.potential, s.options, s.stats)
	if err != nil {
		return nil, SampleInfo{}, collector.Stats{}, err
	}

	s.state = result
	s.stateValid = true

	position := make([]float64, s.dim)
	s.state.WritePosition(position)
	return position, info, s.stats.Stats(), nil
}
