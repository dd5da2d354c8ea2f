package nutsstat

import (
	"math"
	"testing"
)

func TestMomentsMeanAndStdDev(t *testing.T) {
	m := NewMoments(2)
	m.Record([]float64{1, 10})
	m.Record([]float64{3, 20})
	m.Record([]float64{5, 30})

	mean := m.Mean()
	if math.Abs(mean[0]-3) > 1e-9 {
		t.Errorf("Mean()[0] = %v, want 3", mean[0])
	}
	if math.Abs(mean[1]-20) > 1e-9 {
		t.Errorf("Mean()[1] = %v, want 20", mean[1])
	}

	if m.NumDraws() != 3 {
		t.Errorf("NumDraws() = %v, want 3", m.NumDraws())
	}
}

func TestMomentsRecordPanicsOnDimMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Record with mismatched dimension should panic")
		}
	}()

	m := NewMoments(2)
	m.Record([]float64{1, 2, 3})
}

func TestDepthHistogram(t *testing.T) {
	h := NewDepthHistogram()
	h.Record(2, false)
	h.Record(3, false)
	h.Record(3, true)

	if h.Total() != 3 {
		t.Errorf("Total() = %v, want 3", h.Total())
	}
	if h.Count(3) != 2 {
		t.Errorf("Count(3) = %v, want 2", h.Count(3))
	}
	if h.MaxDepth() != 3 {
		t.Errorf("MaxDepth() = %v, want 3", h.MaxDepth())
	}
	if got := h.DivergenceRate(); math.Abs(got-1.0/3) > 1e-9 {
		t.Errorf("DivergenceRate() = %v, want 1/3", got)
	}
}

func TestEffectiveSampleSizeOfIIDDrawsIsCloseToN(t *testing.T) {
	const n = 2000
	draws := make([]float64, n)
	// A simple low-discrepancy sequence stands in for i.i.d. noise
	// without pulling in a PRNG dependency just for this test.
	for i := range draws {
		draws[i] = math.Mod(float64(i)*0.61803398875, 1)
	}

	ess := EffectiveSampleSize(draws)
	if ess <= 0 || ess > n {
		t.Errorf("EffectiveSampleSize = %v, want a value in (0, %d]", ess, n)
	}
}

func TestEffectiveSampleSizeOfConstantSequence(t *testing.T) {
	draws := make([]float64, 100)
	for i := range draws {
		draws[i] = 1
	}
	// A perfectly constant sequence has zero variance; the estimator
	// should not panic or return NaN/Inf.
	ess := EffectiveSampleSize(draws)
	if math.IsNaN(ess) || math.IsInf(ess, 0) {
		t.Errorf("EffectiveSampleSize of a constant sequence = %v, want a finite number", ess)
	}
}
