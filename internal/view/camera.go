package view

import "math"

// Camera pans and zooms the frozen content.
//
// Position is the content-space offset of the view at scale 1. Scale
// magnifies about the window centre, so a content point c lands at
// ((c-Position)/window*2-1)*Scale in normalised device coordinates.
type Camera struct {
	Position   Vec2    // content pixels
	Velocity   Vec2    // content pixels per second
	Scale      float64 // never below Tuning.MinScale
	DeltaScale float64 // scale units per second
	ScalePivot Vec2    // screen point held fixed while zooming

	window Vec2
	tune   Tuning
}

func NewCamera(window Vec2, t Tuning) *Camera {
	c := &Camera{window: window, tune: t}
	c.Reset()
	return c
}

// Reset restores the start-up state.
func (c *Camera) Reset() {
	c.Position = Vec2{}
	c.Velocity = Vec2{}
	c.Scale = c.tune.DefaultScale
	c.DeltaScale = 0
	c.ScalePivot = Vec2{}
}

// Window returns the window size the camera projects into.
func (c *Camera) Window() Vec2 { return c.window }

// Update advances zoom and pan inertia by dt seconds. Inertia is suspended
// while dragging since the drag sets Position directly.
func (c *Camera) Update(dt float64, dragging bool) {
	if math.Abs(c.DeltaScale) > c.tune.ScaleDeadZone {
		// Keep the content point under the pivot where it is.
		off := c.ScalePivot.Sub(c.window.Scale(0.5))
		p0 := off.Div(c.Scale)
		c.Scale = math.Max(c.Scale+c.DeltaScale*dt, c.tune.MinScale)
		p1 := off.Div(c.Scale)
		c.Position = c.Position.Add(p0.Sub(p1))

		c.DeltaScale -= c.DeltaScale * dt * c.tune.ScaleFriction
	}
	if !dragging && c.Velocity.Len() > c.tune.VelocityThreshold {
		c.Position = c.Position.Add(c.Velocity.Scale(dt))
		c.Velocity = c.Velocity.Sub(c.Velocity.Scale(dt * c.tune.DragFriction))
	}
}

// ApplyZoomImpulse feeds a wheel delta into the zoom rate and moves the
// pivot to the given screen point.
func (c *Camera) ApplyZoomImpulse(wheelDelta float64, pivot Vec2) {
	c.DeltaScale += signF(wheelDelta)*c.tune.ZoomImpulse + wheelDelta*c.tune.WheelScale
	c.ScalePivot = pivot
}

// ApplyDragDelta pans by a screen-space delta and primes Velocity so the
// content keeps sliding once the drag ends.
func (c *Camera) ApplyDragDelta(screenDelta Vec2) {
	d := screenDelta.Div(c.Scale)
	c.Position = c.Position.Add(d)
	c.Velocity = d.Scale(c.tune.TickRate)
}

// ToNDC maps a content point to normalised device coordinates, Y up. The
// overlay vertex shader computes exactly this.
func (c *Camera) ToNDC(p Vec2) Vec2 {
	x := ((p.X-c.Position.X)/c.window.X*2 - 1) * c.Scale
	y := ((p.Y-c.Position.Y)/c.window.Y*2 - 1) * c.Scale
	// Content rows are stored top-down.
	return Vec2{x, -y}
}

// ToScreen maps a content point to window pixels, origin top-left.
func (c *Camera) ToScreen(p Vec2) Vec2 {
	n := c.ToNDC(p)
	return Vec2{
		X: (n.X + 1) * 0.5 * c.window.X,
		Y: (1 - n.Y) * 0.5 * c.window.Y,
	}
}

// Unproject is the exact inverse of ToScreen.
func (c *Camera) Unproject(s Vec2) Vec2 {
	half := c.window.Scale(0.5)
	return s.Sub(half).Div(c.Scale).Add(c.Position).Add(half)
}

// Inverse unprojects a screen point and clamps it to a content of the given
// size, yielding a coordinate that is always safe to sample.
func (c *Camera) Inverse(s Vec2, content Vec2) Vec2 {
	p := c.Unproject(s)
	return Vec2{
		X: clampF(p.X, 0, math.Max(content.X-1, 0)),
		Y: clampF(p.Y, 0, math.Max(content.Y-1, 0)),
	}
}
