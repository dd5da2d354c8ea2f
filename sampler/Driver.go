package sampler

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gonuts/nutsstate"
	"github.com/samuelfneumann/gonuts/nutstree"
	"github.com/samuelfneumann/gonuts/potential"
)

// drawOnce runs the NUTS draw driver to completion: it notifies
// collector of the (already momentum-resampled) initial state, builds a
// depth-0 tree from it, and repeatedly doubles the tree in a random
// direction until it turns, diverges, or hits the depth cap. It returns
// the single state selected as the draw, diagnostics about how the
// draw ended, and a non-nil error only for a non-recoverable LogpFunc
// failure (in which case no sample is returned).
//
// init is consumed: callers must not use it again after calling
// drawOnce, successful or not.
func drawOnce(
	pool *nutsstate.StatePool,
	init nutsstate.State,
	rng *rand.Rand,
	pot *potential.EuclideanPotential,
	options NutsOptions,
	coll potential.Collector,
) (nutsstate.State, SampleInfo, error) {
	coll.RegisterInit(init, options)

	tree := nutstree.New(init)
	for tree.Depth < options.MaxDepth {
		dir := potential.Forward
		if rng.Intn(2) == 1 {
			dir = potential.Backward
		}

		outcome, extended, div, err := tree.Extend(pool, rng, pot, dir, options, coll)
		if err != nil {
			return nutsstate.State{}, SampleInfo{}, err
		}

		switch outcome {
		case nutstree.Ok:
			tree = extended
		case nutstree.Turning:
			return finish(extended, SampleInfo{Depth: extended.Depth, MaxDepth: false}, coll)
		case nutstree.Diverging:
			info := SampleInfo{Depth: extended.Depth, MaxDepth: false, Divergence: div}
			return finish(extended, info, coll)
		}
	}

	return finish(tree, SampleInfo{Depth: tree.Depth, MaxDepth: true}, coll)
}

// finish releases a terminated tree's left/right boundaries, keeping
// only its draw, notifies the collector, and returns the draw as the
// sample for this draw.
func finish(tree *nutstree.NutsTree, info SampleInfo, coll potential.Collector) (nutsstate.State, SampleInfo, error) {
	tree.Left.Release()
	tree.Right.Release()
	coll.RegisterDraw(tree.Draw, info)
	return tree.Draw, info, nil
}
