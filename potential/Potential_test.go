package potential

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gonuts/logpmodels"
	"github.com/samuelfneumann/gonuts/massmatrix"
	"github.com/samuelfneumann/gonuts/nutsstate"
)

func TestInitState(t *testing.T) {
	logp := logpmodels.NewNormal(2, 0)
	h := New(logp, massmatrix.NewUnit())
	pool := nutsstate.NewStatePool(2)

	state, err := h.InitState(pool, []float64{1, 2})
	if err != nil {
		t.Fatalf("InitState: %v", err)
	}
	defer state.Release()

	want := -(-0.5*1.0*1.0 - 0.5*2.0*2.0)
	if math.Abs(state.Inner().PotentialEnergy-want) > 1e-9 {
		t.Errorf("InitState: PotentialEnergy = %v, want %v", state.Inner().PotentialEnergy, want)
	}
}

func TestInitStateFatalLogpError(t *testing.T) {
	logp := &fatalLogp{dim: 2}
	h := New(logp, massmatrix.NewUnit())
	pool := nutsstate.NewStatePool(2)

	_, err := h.InitState(pool, []float64{0, 0})
	if err == nil {
		t.Fatal("InitState: expected an error from a failing LogpFunc")
	}
}

type fatalLogp struct{ dim int }

func (f *fatalLogp) Dim() int { return f.dim }
func (f *fatalLogp) Logp([]float64, []float64) (float64, error) {
	return 0, &logpmodels.FatalEvalError{Reason: "boom"}
}

func TestLeapfrogConservesEnergyApproximately(t *testing.T) {
	logp := logpmodels.NewNormal(3, 0)
	h := New(logp, massmatrix.NewUnit())
	pool := nutsstate.NewStatePool(3)

	start, err := h.InitState(pool, []float64{0.5, -0.5, 0.1})
	if err != nil {
		t.Fatalf("InitState: %v", err)
	}
	defer start.Release()

	h.RandomizeMomentum(start, rand.New(rand.NewSource(1)))
	initialEnergy := start.Energy()

	options := Options{MaxDepth: 10, StepSize: 0.01, MaxEnergyError: 1000}

	current := start
	first := true
	for i := 0; i < 50; i++ {
		next, div, err := h.Leapfrog(pool, current, Forward, initialEnergy, options, NullCollector{})
		if err != nil {
			t.Fatalf("Leapfrog: %v", err)
		}
		if div != nil {
			t.Fatalf("Leapfrog: unexpected divergence: %v", div)
		}
		if !first {
			current.Release()
		}
		first = false
		current = next
	}
	defer current.Release()

	if math.Abs(current.Energy()-initialEnergy) > 0.1 {
		t.Errorf("Leapfrog: energy drifted from %v to %v over 50 small steps",
			initialEnergy, current.Energy())
	}
}

func TestLeapfrogDivergesOnRecoverableError(t *testing.T) {
	logp := logpmodels.NewBoundedNormal(1, 0, 1)
	h := New(logp, massmatrix.NewUnit())
	pool := nutsstate.NewStatePool(1)

	start, err := h.InitState(pool, []float64{0})
	if err != nil {
		t.Fatalf("InitState: %v", err)
	}
	defer start.Release()
	start.Inner().P[0] = 100 // push far outside the bound in one step

	options := Options{MaxDepth: 10, StepSize: 1, MaxEnergyError: 1000}
	_, div, err := h.Leapfrog(pool, start, Forward, start.Energy(), options, NullCollector{})
	if err != nil {
		t.Fatalf("Leapfrog: unexpected non-recoverable error: %v", err)
	}
	if div == nil {
		t.Fatal("Leapfrog: expected a divergence from a step leaving the density's support")
	}
}

func TestLeapfrogAbortsOnNonRecoverableError(t *testing.T) {
	logp := &fatalAfterFirstCall{dim: 1}
	h := New(logp, massmatrix.NewUnit())
	pool := nutsstate.NewStatePool(1)

	start, err := h.InitState(pool, []float64{0})
	if err != nil {
		t.Fatalf("InitState: %v", err)
	}
	defer start.Release()

	options := Options{MaxDepth: 10, StepSize: 0.1, MaxEnergyError: 1000}
	_, _, err = h.Leapfrog(pool, start, Forward, start.Energy(), options, NullCollector{})
	if err == nil {
		t.Fatal("Leapfrog: expected a non-recoverable error to abort the draw")
	}
	if _, ok := err.(*NonRecoverableError); !ok {
		t.Errorf("Leapfrog: error type = %T, want *NonRecoverableError", err)
	}
}

type fatalAfterFirstCall struct {
	dim   int
	calls int
}

func (f *fatalAfterFirstCall) Dim() int { return f.dim }
func (f *fatalAfterFirstCall) Logp(q []float64, grad []float64) (float64, error) {
	f.calls++
	if f.calls > 1 {
		return 0, &logpmodels.FatalEvalError{Reason: "unexpected"}
	}
	for i := range grad {
		grad[i] = -q[i]
	}
	return 0, nil
}
