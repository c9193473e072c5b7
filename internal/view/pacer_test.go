package view

import (
	"testing"
	"time"
)

func TestPacerAdvance(t *testing.T) {
	p := NewPacer(250*time.Millisecond, 4)

	steps := []struct {
		elapsed   float64
		wantTicks int
		wantWait  float64
	}{
		{0, 1, 0.25}, // first frame is due at once
		{0.125, 0, 0.125},
		{0.125, 1, 0.25},
		{0.5, 2, 0.25}, // two intervals: a back-to-back burst
		{10, 4, 0.25},  // stall: capped at MaxCatchUp
		{-1, 0, 0.25},  // clock going backwards adds nothing
		{0.375, 1, 0.125},
	}
	for i, s := range steps {
		ticks, wait := p.Advance(s.elapsed)
		if ticks != s.wantTicks || wait != s.wantWait {
			t.Errorf("step %d: Advance(%v) = %d, %v, want %d, %v", i, s.elapsed, ticks, wait, s.wantTicks, s.wantWait)
		}
	}
}

func TestPacerMinimumCatchUp(t *testing.T) {
	p := NewPacer(250*time.Millisecond, 0)
	p.Advance(0)
	if ticks, _ := p.Advance(5); ticks != 1 {
		t.Errorf("Advance(5) = %d ticks, want 1", ticks)
	}
}
