package nutstree

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gonuts/mathutil"
	"github.com/samuelfneumann/gonuts/nutsstate"
	"github.com/samuelfneumann/gonuts/potential"
)

// Outcome classifies the result of Extend.
type Outcome int

const (
	// Ok means the tree extended cleanly and may keep growing.
	Ok Outcome = iota
	// Turning means a U-turn was detected; the draw should stop here.
	Turning
	// Diverging means a leapfrog step diverged; the draw should stop
	// here and report the divergence.
	Diverging
)

// Extend doubles t by one step in the given direction: it builds a
// sibling subtree of the same depth as t by repeated single steps, then
// merges it into t. When the returned error is nil, the returned
// *NutsTree is t itself (mutated in place); on Turning or Diverging it
// is still valid and still holds a usable Draw, per the draw driver's
// contract of returning a sample even when a draw terminates early.
// With a non-nil error the returned tree is nil.
func (t *NutsTree) Extend(
	pool *nutsstate.StatePool,
	rng *rand.Rand,
	pot *potential.EuclideanPotential,
	dir potential.Direction,
	options potential.Options,
	collector potential.Collector,
) (Outcome, *NutsTree, *potential.DivergenceInfo, error) {
	other, div, err := t.singleStep(pool, pot, dir, options, collector)
	if err != nil {
		return Ok, nil, nil, err
	}
	if div != nil {
		return Diverging, t, div, nil
	}

	for other.Depth < t.Depth {
		outcome, extended, nestedDiv, err := other.Extend(pool, rng, pot, dir, options, collector)
		if err != nil {
			other.release()
			return Ok, nil, nil, err
		}
		switch outcome {
		case Ok:
			other = extended
		case Turning:
			extended.release()
			return Turning, t, nil, nil
		case Diverging:
			extended.release()
			return Diverging, t, nestedDiv, nil
		}
	}

	var first, last nutsstate.State
	if dir == potential.Forward {
		first, last = t.Left, other.Right
	} else {
		first, last = other.Left, t.Right
	}

	turning := nutsstate.IsTurning(first.Inner(), last.Inner())
	if !turning && t.Depth > 1 {
		turning = nutsstate.IsTurning(t.Right.Inner(), other.Right.Inner())
	}
	if !turning && t.Depth > 1 {
		turning = nutsstate.IsTurning(t.Left.Inner(), other.Left.Inner())
	}

	t.mergeInto(other, rng, dir)

	if turning {
		return Turning, t, nil, nil
	}
	return Ok, t, nil, nil
}

// mergeInto absorbs other, which must have the same depth as t, into t:
// the boundary on the doubling side is replaced with other's far
// boundary, a new draw is chosen by biased progressive sampling, and
// log-size/depth are updated. Buffers other does not contribute to the
// merged tree are released back to the pool.
func (t *NutsTree) mergeInto(other *NutsTree, rng *rand.Rand, dir potential.Direction) {
	switch dir {
	case potential.Forward:
		t.Right.Release()
		t.Right = other.Right
		other.Left.Release()
	default:
		t.Left.Release()
		t.Left = other.Left
		other.Right.Release()
	}

	if other.LogSize > t.LogSize {
		t.Draw.Release()
		t.Draw = other.Draw
	} else if rng.Float64() < math.Exp(other.LogSize-t.LogSize) {
		t.Draw.Release()
		t.Draw = other.Draw
	} else {
		other.Draw.Release()
	}

	t.LogSize = mathutil.LogAddExp(t.LogSize, other.LogSize)
	t.Depth++
}
