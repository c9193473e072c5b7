package view

import "math"

// Vec2 is a 2D vector in either content or screen space.
type Vec2 struct {
	X, Y float64
}

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

// Scale returns a * s.
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }

// Div returns a / s. s must be non-zero.
func (a Vec2) Div(s float64) Vec2 { return Vec2{a.X / s, a.Y / s} }

func (a Vec2) Len() float64 { return math.Hypot(a.X, a.Y) }

// F32 narrows to the layout GL uniforms take.
func (a Vec2) F32() [2]float32 { return [2]float32{float32(a.X), float32(a.Y)} }
