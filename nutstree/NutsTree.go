// Package nutstree implements the balanced binary tree NUTS builds over
// a Hamiltonian trajectory: recursive doubling, the U-turn termination
// test across subtrees, and multinomial draw-state selection.
package nutstree

import (
	"github.com/samuelfneumann/gonuts/nutsstate"
	"github.com/samuelfneumann/gonuts/potential"
)

// NutsTree is a contiguous subtree of a NUTS trajectory: the leftmost
// and rightmost states of the subtree, a candidate draw state sampled
// from the subtree's leaves, the subtree's depth (log2 of its leaf
// count), and the log-sum of its leaves' acceptance weights.
type NutsTree struct {
	Left, Right, Draw nutsstate.State

	Depth   uint64
	LogSize float64

	// InitialEnergy is the energy of the draw's root state, the
	// baseline every leaf's acceptance weight and every leapfrog's
	// energy error is measured against.
	InitialEnergy float64
}

// New builds a fresh depth-0 tree from a single state. state is moved
// into the tree's Draw field; Left and Right are independent clones.
func New(state nutsstate.State) *NutsTree {
	return &NutsTree{
		Left:          state.Clone(),
		Right:         state.Clone(),
		Draw:          state,
		Depth:         0,
		LogSize:       0,
		InitialEnergy: state.Energy(),
	}
}

// release returns t's three state buffers to the pool. It is used to
// discard a tree whose result is not going to be kept by the caller —
// most commonly a nested doubling that turned or diverged and whose
// further-extended states are no longer needed once the outer caller
// has recorded why it stopped.
func (t *NutsTree) release() {
	t.Left.Release()
	t.Right.Release()
	t.Draw.Release()
}

// singleStep extends the tree by exactly one leapfrog step in the given
// direction, from the Right boundary if Forward or the Left boundary if
// Backward. On success it returns a fresh depth-0 tree holding only the
// new leaf.
func (t *NutsTree) singleStep(
	pool *nutsstate.StatePool,
	pot *potential.EuclideanPotential,
	dir potential.Direction,
	options potential.Options,
	collector potential.Collector,
) (*NutsTree, *potential.DivergenceInfo, error) {
	start := t.Right
	if dir == potential.Backward {
		start = t.Left
	}

	end, div, err := pot.Leapfrog(pool, start, dir, t.InitialEnergy, options, collector)
	if err != nil {
		return nil, nil, err
	}
	if div != nil {
		return nil, div, nil
	}

	logSize := end.LogAcceptanceProbability(t.InitialEnergy)
	return &NutsTree{
		Left:          end.Clone(),
		Right:         end.Clone(),
		Draw:          end,
		Depth:         0,
		LogSize:       logSize,
		InitialEnergy: t.InitialEnergy,
	}, nil, nil
}
