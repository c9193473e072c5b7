package view

import (
	"math/rand"
	"testing"
)

func TestFlashLightShadowSaturates(t *testing.T) {
	f := NewFlashLight(DefaultTuning())
	f.Toggle()
	dt := 1.0 / 60

	prev := f.Shadow
	for i := 1; i <= 10; i++ {
		f.Update(dt)
		if f.Shadow < prev {
			t.Fatalf("tick %d: Shadow fell from %v to %v", i, prev, f.Shadow)
		}
		if i == 7 && f.Shadow >= ShadowMax {
			t.Errorf("tick 7: Shadow = %v, want below %v", f.Shadow, ShadowMax)
		}
		prev = f.Shadow
	}
	if f.Shadow != ShadowMax {
		t.Errorf("Shadow = %v after 10 ticks, want %v", f.Shadow, ShadowMax)
	}

	f.Toggle()
	for i := 1; i <= 10; i++ {
		f.Update(dt)
		if f.Shadow > prev {
			t.Fatalf("tick %d: Shadow rose from %v to %v", i, prev, f.Shadow)
		}
		prev = f.Shadow
	}
	if f.Shadow != 0 {
		t.Errorf("Shadow = %v after fading out, want 0", f.Shadow)
	}
}

func TestFlashLightToggleIsGradual(t *testing.T) {
	f := NewFlashLight(DefaultTuning())
	f.Toggle()
	if !f.Enabled || f.Shadow != 0 {
		t.Errorf("after Toggle() Enabled = %v, Shadow = %v, want true and 0", f.Enabled, f.Shadow)
	}
	f.Toggle()
	if f.Enabled {
		t.Error("Toggle() left flashlight enabled")
	}
}

func TestFlashLightRadiusNeverNegative(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	f := NewFlashLight(DefaultTuning())
	dt := 1.0 / 60
	for i := 0; i < 3000; i++ {
		if r.Intn(4) == 0 {
			f.AdjustRadius(-1)
		}
		if r.Intn(10) == 0 {
			f.AdjustRadius(1)
		}
		f.Update(dt)
		if f.Radius < 0 {
			t.Fatalf("step %d: Radius = %v", i, f.Radius)
		}
	}
}

func TestFlashLightRadiusPhysics(t *testing.T) {
	tests := []struct {
		name      string
		delta     float64
		wantDelta float64
		wantR     float64
	}{
		{"dead zone", 1.0, 1.0, 100},
		{"grows", 250, 250 - 250.0/6, 100 + 250.0/60},
		{"shrinks", -250, -250 + 250.0/6, 100 - 250.0/60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFlashLight(DefaultTuning())
			f.DeltaRadius = tt.delta
			f.Update(1.0 / 60)
			if d := f.Radius - tt.wantR; d > 1e-9 || d < -1e-9 {
				t.Errorf("Radius = %v, want %v", f.Radius, tt.wantR)
			}
			if d := f.DeltaRadius - tt.wantDelta; d > 1e-9 || d < -1e-9 {
				t.Errorf("DeltaRadius = %v, want %v", f.DeltaRadius, tt.wantDelta)
			}
		})
	}
}

func TestFlashLightAdjustRadius(t *testing.T) {
	f := NewFlashLight(DefaultTuning())
	f.AdjustRadius(3)
	f.AdjustRadius(-0.5)
	f.AdjustRadius(1)
	if f.DeltaRadius != RadiusImpulse {
		t.Errorf("DeltaRadius = %v, want %v", f.DeltaRadius, RadiusImpulse)
	}
}

func TestFlashLightReset(t *testing.T) {
	f := NewFlashLight(DefaultTuning())
	f.Enabled = true
	f.Shadow = 0.5
	f.Radius = 3
	f.DeltaRadius = -40
	f.Reset()

	want := NewFlashLight(DefaultTuning())
	if *f != *want {
		t.Errorf("Reset() = %+v, want %+v", *f, *want)
	}
	if f.Radius != 100 || f.Enabled || f.Shadow != 0 || f.DeltaRadius != 0 {
		t.Errorf("Reset() = %+v, want radius 100 and everything else off", *f)
	}
}
