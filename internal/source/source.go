// Package source provides the frozen content the overlay magnifies and reads
// colours from.
package source

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// BytesPerPixel of the RGBA buffers handed to the renderer.
const BytesPerPixel = 4

var ErrEmptyImage = errors.New("empty image")

// Source freezes content into a sampleable buffer.
type Source interface {
	Capture() (*image.RGBA, error)
}

// File captures an image file from disk.
type File struct {
	Path string
}

func (f File) Capture() (*image.RGBA, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.Path, err)
	}
	defer fh.Close()

	img, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.Path, err)
	}
	return img, nil
}

// Decode reads any registered image format and returns it as a tightly
// packed RGBA buffer with its origin at (0,0).
func Decode(r io.Reader) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return ToRGBA(img)
}

// ToRGBA copies img into a fresh RGBA buffer whose rows are contiguous, as
// GL texture uploads expect.
func ToRGBA(img image.Image) (*image.RGBA, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == b.Dx()*BytesPerPixel {
		return rgba, nil
	}
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out, nil
}

// Pattern is a generated test card, used when no image is given.
type Pattern struct {
	Width, Height int
	Cell          int // checker size in pixels
}

func (p Pattern) Capture() (*image.RGBA, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, ErrEmptyImage
	}
	cell := p.Cell
	if cell <= 0 {
		cell = 32
	}
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			// Hue sweep left to right, brightness top to bottom, checker on top.
			r := uint8(255 * x / max(p.Width-1, 1))
			g := uint8(255 * y / max(p.Height-1, 1))
			b := uint8(255 - int(r)/2)
			if (x/cell+y/cell)%2 == 0 {
				r, g, b = r/2+64, g/2+64, b/2+64
			}
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img, nil
}
