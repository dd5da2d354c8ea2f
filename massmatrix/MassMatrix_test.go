package massmatrix

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gonuts/nutsstate"
)

func newInner(dim int) *nutsstate.InnerState {
	return &nutsstate.InnerState{
		Dim:  dim,
		Q:    make([]float64, dim),
		P:    make([]float64, dim),
		V:    make([]float64, dim),
		Grad: make([]float64, dim),
		PSum: make([]float64, dim),
	}
}

func TestUnitVelocityEqualsMomentum(t *testing.T) {
	state := newInner(3)
	state.P = []float64{1, -2, 3}

	u := NewUnit()
	u.UpdateVelocity(state)
	for i, v := range state.P {
		if state.V[i] != v {
			t.Errorf("Unit.UpdateVelocity: V[%d] = %v, want %v", i, state.V[i], v)
		}
	}

	u.UpdateKineticEnergy(state)
	want := 0.5 * (1*1 + 2*2 + 3*3)
	if state.KineticEnergy != want {
		t.Errorf("Unit.UpdateKineticEnergy = %v, want %v", state.KineticEnergy, want)
	}
}

func TestDiagonalVelocityIsElementwiseQuotient(t *testing.T) {
	state := newInner(2)
	state.P = []float64{4, 9}

	d := NewDiagonal([]float64{2, 3})
	d.UpdateVelocity(state)

	if math.Abs(state.V[0]-2) > 1e-12 {
		t.Errorf("Diagonal.UpdateVelocity: V[0] = %v, want 2", state.V[0])
	}
	if math.Abs(state.V[1]-3) > 1e-12 {
		t.Errorf("Diagonal.UpdateVelocity: V[1] = %v, want 3", state.V[1])
	}
}

func TestRandomizeMomentumIsDeterministicForFixedSeed(t *testing.T) {
	state1 := newInner(5)
	state2 := newInner(5)

	u := NewUnit()
	u.RandomizeMomentum(state1, rand.New(rand.NewSource(1)))
	u.RandomizeMomentum(state2, rand.New(rand.NewSource(1)))

	for i := range state1.P {
		if state1.P[i] != state2.P[i] {
			t.Errorf("RandomizeMomentum not deterministic for a fixed seed: P[%d] = %v vs %v",
				i, state1.P[i], state2.P[i])
		}
	}
}

func TestDiagonalRandomizeMomentumScalesVariance(t *testing.T) {
	const n = 20000
	rng := rand.New(rand.NewSource(7))
	d := NewDiagonal([]float64{1, 100})

	var sumSq0, sumSq1 float64
	for i := 0; i < n; i++ {
		state := newInner(2)
		d.RandomizeMomentum(state, rng)
		sumSq0 += state.P[0] * state.P[0]
		sumSq1 += state.P[1] * state.P[1]
	}

	variance0 := sumSq0 / n
	variance1 := sumSq1 / n

	if math.Abs(variance0-1) > 0.2 {
		t.Errorf("Diagonal momentum coordinate 0 sample variance = %v, want close to 1", variance0)
	}
	if math.Abs(variance1-100) > 10 {
		t.Errorf("Diagonal momentum coordinate 1 sample variance = %v, want close to 100", variance1)
	}
}
