package progressbar

import "testing"

func TestIncrementStopsAtMax(t *testing.T) {
	p := NewManualProgressBar(10, 3)
	for i := 0; i < 10; i++ {
		p.Increment()
	}
	if p.currentProgress != 3 {
		t.Errorf("currentProgress = %v, want 3 (capped at max)", p.currentProgress)
	}
}

func TestNewManualProgressBarStartsAtZero(t *testing.T) {
	p := NewManualProgressBar(10, 5)
	if p.currentProgress != 0 {
		t.Errorf("currentProgress = %v, want 0", p.currentProgress)
	}
}
