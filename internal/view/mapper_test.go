package view

import "testing"

func TestShadowAtCoversWholeWindow(t *testing.T) {
	tune := DefaultTuning()
	cam := NewCamera(hd, tune)
	cam.Scale = 0.5 // zoomed out: the content covers the middle quarter
	fl := NewFlashLight(tune)
	fl.Toggle()
	for i := 0; i < 10; i++ {
		fl.Update(tune.DT())
	}
	m := Mapper{Window: hd, Content: hd}
	p := m.Params(cam, fl, Vec2{960, 540})

	tests := []struct {
		name string
		pt   Vec2
		want float64
	}{
		{"cursor", Vec2{960, 540}, 0},
		{"inside scaled radius", Vec2{960 + 49, 540}, 0},
		{"outside scaled radius on content", Vec2{960 + 51, 540}, ShadowMax},
		{"window corner off content", Vec2{5, 5}, ShadowMax},
		{"right edge off content", Vec2{1915, 540}, ShadowMax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ShadowAt(tt.pt); got != float64(float32(tt.want)) {
				t.Errorf("ShadowAt(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}

	// The corner really is outside the content.
	if s := cam.ToScreen(Vec2{}); s.X <= 5 || s.Y <= 5 {
		t.Fatalf("content origin on screen at %v, want inside the window", s)
	}
}

func TestMapperPixelTruncatesSample(t *testing.T) {
	cam := NewCamera(hd, DefaultTuning())
	cam.Scale = 3
	m := Mapper{Window: hd, Content: hd}
	for _, cursor := range []Vec2{{0, 0}, {961, 541}, {1919, 1079}, {-50, 2000}} {
		s := m.SampleContentPixel(cam, cursor)
		if got := m.Pixel(cam, cursor); got.X != int(s.X) || got.Y != int(s.Y) {
			t.Errorf("Pixel(%v) = %v, want truncation of %v", cursor, got, s)
		}
	}
}
