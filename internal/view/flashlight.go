package view

import "math"

// FlashLight darkens everything outside a circle around the cursor.
type FlashLight struct {
	Enabled     bool
	Shadow      float64 // overlay opacity outside the circle, 0..ShadowMax
	Radius      float64 // content pixels, never negative
	DeltaRadius float64 // content pixels per second

	tune Tuning
}

func NewFlashLight(t Tuning) *FlashLight {
	f := &FlashLight{tune: t}
	f.Reset()
	return f
}

func (f *FlashLight) Reset() {
	f.Enabled = false
	f.Shadow = 0
	f.Radius = f.tune.DefaultRadius
	f.DeltaRadius = 0
}

// Update advances the radius and eases Shadow toward the enabled state.
func (f *FlashLight) Update(dt float64) {
	if math.Abs(f.DeltaRadius) > f.tune.RadiusDeadZone {
		f.Radius = math.Max(0, f.Radius+f.DeltaRadius*dt)
		f.DeltaRadius -= f.DeltaRadius * dt * f.tune.RadiusDeceleration
	}
	if f.Enabled {
		f.Shadow = math.Min(f.Shadow+f.tune.EaseRate*dt, f.tune.ShadowMax)
	} else {
		f.Shadow = math.Max(f.Shadow-f.tune.EaseRate*dt, 0)
	}
}

// Toggle flips the direction Shadow eases in; the change shows up over the
// following updates.
func (f *FlashLight) Toggle() { f.Enabled = !f.Enabled }

// AdjustRadius kicks the radius in the direction of sign.
func (f *FlashLight) AdjustRadius(sign float64) {
	f.DeltaRadius += signF(sign) * f.tune.RadiusImpulse
}
