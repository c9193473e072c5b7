package view

import "image"

// RenderParams is everything the overlay shaders need for one frame.
type RenderParams struct {
	CameraPosition  [2]float32
	CameraScale     float32
	FlashShadow     float32 // 0..ShadowMax
	FlashRadius     float32 // content pixels
	CursorScreenPos [2]float32
	WindowSize      [2]float32
}

// Mapper derives render parameters and sample coordinates from the camera
// and flashlight. Window and Content are fixed at start-up.
type Mapper struct {
	Window  Vec2
	Content Vec2
}

func (m Mapper) Params(cam *Camera, fl *FlashLight, cursor Vec2) RenderParams {
	return RenderParams{
		CameraPosition:  cam.Position.F32(),
		CameraScale:     float32(cam.Scale),
		FlashShadow:     float32(fl.Shadow),
		FlashRadius:     float32(fl.Radius),
		CursorScreenPos: cursor.F32(),
		WindowSize:      m.Window.F32(),
	}
}

// SampleContentPixel returns the content coordinate shown under the cursor,
// clamped to the content bounds.
func (m Mapper) SampleContentPixel(cam *Camera, cursor Vec2) Vec2 {
	return cam.Inverse(cursor, m.Content)
}

// Pixel is SampleContentPixel truncated to a pixel index.
func (m Mapper) Pixel(cam *Camera, cursor Vec2) image.Point {
	p := m.SampleContentPixel(cam, cursor)
	return image.Pt(int(p.X), int(p.Y))
}

// ShadowAt is the darkening applied at window point pt: none inside the
// flashlight circle, FlashShadow everywhere else in the window, including
// outside the content.
func (p RenderParams) ShadowAt(pt Vec2) float64 {
	cursor := Vec2{float64(p.CursorScreenPos[0]), float64(p.CursorScreenPos[1])}
	if pt.Sub(cursor).Len() < float64(p.FlashRadius)*float64(p.CameraScale) {
		return 0
	}
	return float64(p.FlashShadow)
}
