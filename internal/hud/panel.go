// Package hud rasterises the colour readout panel drawn over the magnified
// content.
package hud

import (
	"fmt"
	"image"
	"image/color"
	"slices"

	"github.com/golang/freetype/truetype"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

const (
	padding = 6
	gap     = 8 // between swatch and text
)

var (
	background = color.RGBA{R: 0, G: 0, B: 0, A: 200}
	border     = color.RGBA{R: 90, G: 90, B: 90, A: 255}
)

// Panel holds the text shown in the corner and fades it in and out.
type Panel struct {
	face   font.Face
	lineH  int
	ascent int

	lines  []string
	swatch color.RGBA

	visible bool
	alpha   float32
	fade    float32 // seconds for a full 0->1 fade
	tween   *gween.Tween

	img   *image.RGBA
	dirty bool
}

// NewPanel parses the built-in monospace face at size points.
func NewPanel(size, fadeSeconds float64) (*Panel, error) {
	ft, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face := truetype.NewFace(ft, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	m := face.Metrics()
	return &Panel{
		face:   face,
		lineH:  m.Height.Ceil(),
		ascent: m.Ascent.Ceil(),
		fade:   float32(fadeSeconds),
		dirty:  true,
	}, nil
}

func (p *Panel) Visible() bool { return p.visible }

// Alpha is the current opacity in [0, 1].
func (p *Panel) Alpha() float32 { return p.alpha }

func (p *Panel) Toggle() { p.SetVisible(!p.visible) }

// SetVisible starts a fade towards the new state. Interrupting a fade
// continues from the current opacity.
func (p *Panel) SetVisible(v bool) {
	if v == p.visible {
		return
	}
	p.visible = v
	var target float32
	if v {
		target = 1
	}
	dur := p.fade * abs32(target-p.alpha)
	if dur <= 0 {
		p.alpha = target
		p.tween = nil
		return
	}
	p.tween = gween.New(p.alpha, target, dur, ease.OutQuad)
}

// Update advances the fade by dt seconds and returns the opacity.
func (p *Panel) Update(dt float32) float32 {
	if p.tween == nil {
		return p.alpha
	}
	a, done := p.tween.Update(dt)
	p.alpha = a
	if done {
		p.tween = nil
	}
	return p.alpha
}

// SetLines replaces the text and swatch colour. It reports whether the
// panel needs re-rasterising.
func (p *Panel) SetLines(lines []string, swatch color.RGBA) bool {
	if swatch == p.swatch && slices.Equal(lines, p.lines) {
		return false
	}
	p.lines = append(p.lines[:0], lines...)
	p.swatch = swatch
	p.dirty = true
	return true
}

// Dirty reports whether Image would rasterise again.
func (p *Panel) Dirty() bool { return p.dirty }

// Image returns the panel rasterised with premultiplied alpha.
func (p *Panel) Image() *image.RGBA {
	if !p.dirty && p.img != nil {
		return p.img
	}
	p.dirty = false

	textW := 0
	for _, l := range p.lines {
		textW = max(textW, font.MeasureString(p.face, l).Ceil())
	}
	sw := 2 * p.lineH
	w := padding*2 + sw + gap + textW
	h := padding*2 + max(len(p.lines)*p.lineH, sw)

	if p.img == nil || p.img.Bounds().Dx() != w || p.img.Bounds().Dy() != h {
		p.img = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	draw.Draw(p.img, p.img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	swatchRect := image.Rect(padding, padding, padding+sw, padding+sw)
	draw.Draw(p.img, swatchRect.Inset(-1), image.NewUniform(border), image.Point{}, draw.Src)
	draw.Draw(p.img, swatchRect, image.NewUniform(p.swatch), image.Point{}, draw.Src)

	d := font.Drawer{Dst: p.img, Src: image.White, Face: p.face}
	x := padding + sw + gap
	for i, l := range p.lines {
		d.Dot = fixed.P(x, padding+i*p.lineH+p.ascent)
		d.DrawString(l)
	}
	return p.img
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
