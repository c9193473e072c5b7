package hud

import (
	"fmt"

	"magnify/internal/source"
	"magnify/internal/view"
)

// Lines formats the readout for one frame.
func Lines(f view.Frame, r source.Readout) []string {
	flash := "flash  off"
	if f.Flash.Enabled {
		flash = fmt.Sprintf("flash  r=%.0f dr=%.0f", f.Flash.Radius, f.Flash.DeltaRadius)
	}
	return []string{
		fmt.Sprintf("cursor %4.0f %4.0f", f.Cursor.X, f.Cursor.Y),
		fmt.Sprintf("pixel  %4d %4d", f.Pixel.X, f.Pixel.Y),
		r.RGBString(),
		r.HexString(),
		r.HSVString(),
		flash,
		fmt.Sprintf("scale  %.2f ds=%.2f", f.Camera.Scale, f.Camera.DeltaScale),
		fmt.Sprintf("camera %.0f %.0f", f.Camera.Position.X, f.Camera.Position.Y),
	}
}
