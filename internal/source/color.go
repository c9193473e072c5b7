package source

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Readout describes one picked colour.
type Readout struct {
	At  image.Point // content pixel
	RGB color.RGBA
	Hex string  // #RRGGBB
	H   float64 // degrees, [0, 360)
	S   float64 // 0..1
	V   float64 // 0..1
}

// Describe converts a colour to its RGB, hex and HSV readout. Alpha is
// ignored; frozen screens are opaque.
func Describe(c color.Color) Readout {
	r, g, b, _ := c.RGBA()
	rgb := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
	cf := colorful.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
	h, s, v := cf.Hsv()
	return Readout{
		RGB: rgb,
		Hex: strings.ToUpper(cf.Hex()),
		H:   h,
		S:   s,
		V:   v,
	}
}

func (r Readout) RGBString() string {
	return fmt.Sprintf("RGB:(%d,%d,%d)", r.RGB.R, r.RGB.G, r.RGB.B)
}

func (r Readout) HexString() string { return "HEX: " + r.Hex }

func (r Readout) HSVString() string {
	return fmt.Sprintf("HSV: (%.0f°, %.0f%%, %.0f%%)", r.H, r.S*100, r.V*100)
}

func (r Readout) String() string {
	return fmt.Sprintf("x=%d y=%d %s %s %s", r.At.X, r.At.Y, r.RGBString(), r.HexString(), r.HSVString())
}

// Picker reads colours from frozen content.
type Picker struct {
	img *image.RGBA
}

func NewPicker(img *image.RGBA) *Picker {
	return &Picker{img: img}
}

// At returns the colour at pt, clamped to the image bounds.
func (p *Picker) At(pt image.Point) color.RGBA {
	b := p.img.Bounds()
	pt.X = min(max(pt.X, b.Min.X), b.Max.X-1)
	pt.Y = min(max(pt.Y, b.Min.Y), b.Max.Y-1)
	return p.img.RGBAAt(pt.X, pt.Y)
}

// Pick reads and describes the colour at pt.
func (p *Picker) Pick(pt image.Point) Readout {
	r := Describe(p.At(pt))
	r.At = pt
	return r
}
