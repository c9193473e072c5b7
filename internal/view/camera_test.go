package view

import (
	"math"
	"math/rand"
	"testing"
)

var hd = Vec2{X: 1920, Y: 1080}

func near(a, b Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera(hd, DefaultTuning())
	if c.Scale != 1 || c.DeltaScale != 0 || c.Position != (Vec2{}) || c.Velocity != (Vec2{}) {
		t.Errorf("NewCamera() = %+v, want scale 1 and zero motion", *c)
	}
}

func TestCameraPivotInvariance(t *testing.T) {
	tests := []struct {
		name       string
		scale      float64
		deltaScale float64
		pivot      Vec2
	}{
		{"zoom in at corner", 1, 0.6, Vec2{10, 20}},
		{"zoom in off centre", 2.5, 3, Vec2{1500, 300}},
		{"zoom out", 4, -5, Vec2{200, 900}},
		{"tiny scale", 0.02, 0.2, Vec2{1919, 1079}},
		{"hits floor", 0.05, -100, Vec2{700, 100}},
		{"large scale", 80, 40, Vec2{961, 13}},
	}
	dt := 1.0 / 60
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(hd, DefaultTuning())
			c.Scale = tt.scale
			c.Position = Vec2{-123.5, 77.25}
			c.DeltaScale = tt.deltaScale
			c.ScalePivot = tt.pivot

			under := c.Unproject(tt.pivot)
			c.Update(dt, false)
			if c.Scale == tt.scale {
				t.Fatalf("Update() left scale at %v", c.Scale)
			}
			if got := c.ToScreen(under); !near(got, tt.pivot, 1e-4) {
				t.Errorf("pivot drifted: ToScreen(%v) = %v, want %v", under, got, tt.pivot)
			}
			if got := c.ToScreen(c.Unproject(tt.pivot)); !near(got, tt.pivot, 1e-4) {
				t.Errorf("ToScreen(Unproject(pivot)) = %v, want %v", got, tt.pivot)
			}
		})
	}
}

func TestCameraZoomAtCentreKeepsCentre(t *testing.T) {
	c := NewCamera(hd, DefaultTuning())
	centre := Vec2{960, 540}
	c.ApplyZoomImpulse(120, centre)
	if math.Abs(c.DeltaScale-0.6) > 1e-12 {
		t.Fatalf("DeltaScale = %v, want 0.6", c.DeltaScale)
	}

	dt := 1.0 / 60
	for i := 0; math.Abs(c.DeltaScale) > 0.1; i++ {
		if i > 10000 {
			t.Fatal("zoom never settled")
		}
		c.Update(dt, false)
	}
	if c.Scale <= 1 {
		t.Errorf("Scale = %v, want > 1 after zooming in", c.Scale)
	}
	if !near(c.Position, Vec2{}, 1e-9) {
		t.Errorf("Position = %v, want (0,0)", c.Position)
	}
	if got := c.ToScreen(centre); !near(got, centre, 1e-4) {
		t.Errorf("ToScreen(centre) = %v, want %v", got, centre)
	}
}

func TestCameraZoomDeadZone(t *testing.T) {
	c := NewCamera(hd, DefaultTuning())
	c.DeltaScale = 0.1
	c.ScalePivot = Vec2{3, 4}
	c.Update(1.0/60, false)
	if c.Scale != 1 || c.DeltaScale != 0.1 {
		t.Errorf("Update() inside dead zone changed scale to %v (delta %v)", c.Scale, c.DeltaScale)
	}
}

func TestCameraScaleFloor(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	c := NewCamera(hd, DefaultTuning())
	dt := 1.0 / 60
	for i := 0; i < 2000; i++ {
		if r.Intn(3) == 0 {
			delta := (r.Float64()*2 - 1.5) * 120 * float64(1+r.Intn(20))
			c.ApplyZoomImpulse(delta, Vec2{r.Float64() * hd.X, r.Float64() * hd.Y})
		}
		for n := r.Intn(5); n >= 0; n-- {
			c.Update(dt, false)
			if c.Scale < MinScale {
				t.Fatalf("step %d: Scale = %v, below floor %v", i, c.Scale, MinScale)
			}
		}
	}
}

func TestCameraMomentumDecay(t *testing.T) {
	c := NewCamera(hd, DefaultTuning())
	c.Velocity = Vec2{1000, -500}
	dt := 1.0 / 60

	prev := c.Velocity.Len()
	for i := 0; prev > VelocityThreshold; i++ {
		if i > 10000 {
			t.Fatal("velocity never dropped below threshold")
		}
		c.Update(dt, false)
		got := c.Velocity.Len()
		if got >= prev {
			t.Fatalf("step %d: |Velocity| = %v, want < %v", i, got, prev)
		}
		prev = got
	}

	pos := c.Position
	for i := 0; i < 30; i++ {
		c.Update(dt, false)
	}
	if c.Position != pos {
		t.Errorf("Position moved below threshold: %v -> %v", pos, c.Position)
	}
}

func TestCameraDraggingSuspendsInertia(t *testing.T) {
	c := NewCamera(hd, DefaultTuning())
	c.Velocity = Vec2{600, 0}
	c.Update(1.0/60, true)
	if c.Position != (Vec2{}) || c.Velocity != (Vec2{600, 0}) {
		t.Errorf("Update(dragging) = pos %v vel %v, want untouched", c.Position, c.Velocity)
	}
}

func TestCameraApplyDragDelta(t *testing.T) {
	tests := []struct {
		name    string
		scale   float64
		delta   Vec2
		wantPos Vec2
		wantVel Vec2
	}{
		{"unit scale", 1, Vec2{20, 10}, Vec2{20, 10}, Vec2{1200, 600}},
		{"zoomed in", 2, Vec2{20, -10}, Vec2{10, -5}, Vec2{600, -300}},
		{"zero", 3, Vec2{}, Vec2{}, Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(hd, DefaultTuning())
			c.Scale = tt.scale
			c.Velocity = Vec2{99, 99}
			c.ApplyDragDelta(tt.delta)
			if !near(c.Position, tt.wantPos, 1e-9) {
				t.Errorf("Position = %v, want %v", c.Position, tt.wantPos)
			}
			if !near(c.Velocity, tt.wantVel, 1e-9) {
				t.Errorf("Velocity = %v, want %v", c.Velocity, tt.wantVel)
			}
		})
	}
}

func TestCameraRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	c := NewCamera(hd, DefaultTuning())
	for i := 0; i < 500; i++ {
		c.Scale = MinScale + r.Float64()*30
		c.Position = Vec2{(r.Float64() - 0.5) * 4000, (r.Float64() - 0.5) * 4000}
		p := Vec2{r.Float64() * (hd.X - 1), r.Float64() * (hd.Y - 1)}

		s := c.ToScreen(p)
		if got := c.Unproject(s); !near(got, p, 1e-6) {
			t.Fatalf("Unproject(ToScreen(%v)) = %v at scale %v", p, got, c.Scale)
		}
		if got := c.Inverse(s, hd); !near(got, p, 1e-6) {
			t.Fatalf("Inverse(ToScreen(%v)) = %v at scale %v", p, got, c.Scale)
		}
	}
}

func TestCameraToNDC(t *testing.T) {
	c := NewCamera(Vec2{100, 50}, DefaultTuning())
	tests := []struct {
		p    Vec2
		want Vec2
	}{
		{Vec2{0, 0}, Vec2{-1, 1}},
		{Vec2{100, 50}, Vec2{1, -1}},
		{Vec2{50, 25}, Vec2{0, 0}},
	}
	for _, tt := range tests {
		if got := c.ToNDC(tt.p); !near(got, tt.want, 1e-12) {
			t.Errorf("ToNDC(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	c.Scale = 2
	c.Position = Vec2{25, 0}
	if got, want := c.ToNDC(Vec2{75, 25}), (Vec2{0, 0}); !near(got, want, 1e-12) {
		t.Errorf("ToNDC(75,25) at scale 2 = %v, want %v", got, want)
	}
}

func TestCameraInverseClamps(t *testing.T) {
	c := NewCamera(hd, DefaultTuning())
	c.Position = Vec2{-500, 5000}
	got := c.Inverse(Vec2{0, 0}, hd)
	if got != (Vec2{0, hd.Y - 1}) {
		t.Errorf("Inverse() = %v, want %v", got, Vec2{0, hd.Y - 1})
	}
}

func TestCameraReset(t *testing.T) {
	c := NewCamera(hd, DefaultTuning())
	c.Position = Vec2{1, 2}
	c.Velocity = Vec2{3, 4}
	c.Scale = 7
	c.DeltaScale = -2
	c.ScalePivot = Vec2{5, 6}
	c.Reset()

	want := NewCamera(hd, DefaultTuning())
	if *c != *want {
		t.Errorf("Reset() = %+v, want %+v", *c, *want)
	}
}
