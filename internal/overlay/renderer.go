package overlay

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"magnify/internal/view"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws the frozen content and the readout panel. All methods
// must run on the thread owning the GL context.
type Renderer struct {
	quadVAO uint32
	quadVBO uint32

	contentProg uint32
	contentTex  uint32
	contentSize [2]float32

	cUContentSize int32
	cUWindow      int32
	cUCamera      int32
	cUScale       int32

	shadeProg    uint32
	sURect       int32
	sUWindow     int32
	sUCursor     int32
	sUPixelRatio int32
	sUScale      int32
	sUShadow     int32
	sURadius     int32

	panelProg uint32
	panelTex  uint32
	panelSize image.Point

	pURect   int32
	pUWindow int32
	pUAlpha  int32
}

// NewRenderer compiles the programs and uploads content as a texture.
func NewRenderer(content *image.RGBA) (*Renderer, error) {
	contentProg, err := linkProgram(contentVertSrc, contentFragSrc)
	if err != nil {
		return nil, fmt.Errorf("content program: %w", err)
	}
	shadeProg, err := linkProgram(rectVertSrc, shadeFragSrc)
	if err != nil {
		gl.DeleteProgram(contentProg)
		return nil, fmt.Errorf("shade program: %w", err)
	}
	panelProg, err := linkProgram(rectVertSrc, panelFragSrc)
	if err != nil {
		gl.DeleteProgram(contentProg)
		gl.DeleteProgram(shadeProg)
		return nil, fmt.Errorf("panel program: %w", err)
	}

	b := content.Bounds()
	r := &Renderer{
		contentProg: contentProg,
		shadeProg:   shadeProg,
		panelProg:   panelProg,
		contentSize: [2]float32{float32(b.Dx()), float32(b.Dy())},
	}

	// Unit quad (6 vertices, 2 triangles) shared by all programs.
	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	// Content texture. Outside the content the border colour shows.
	gl.GenTextures(1, &r.contentTex)
	gl.BindTexture(gl.TEXTURE_2D, r.contentTex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
	border := [4]float32{0, 0, 0, 0}
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &border[0])
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(content.Pix))

	gl.UseProgram(contentProg)
	r.cUContentSize = uniform(contentProg, "uContentSize")
	r.cUWindow = uniform(contentProg, "uWindow")
	r.cUCamera = uniform(contentProg, "uCamera")
	r.cUScale = uniform(contentProg, "uScale")
	gl.Uniform1i(uniform(contentProg, "uTex"), 0)

	gl.UseProgram(shadeProg)
	r.sURect = uniform(shadeProg, "uRect")
	r.sUWindow = uniform(shadeProg, "uWindow")
	r.sUCursor = uniform(shadeProg, "uCursor")
	r.sUPixelRatio = uniform(shadeProg, "uPixelRatio")
	r.sUScale = uniform(shadeProg, "uScale")
	r.sUShadow = uniform(shadeProg, "uShadow")
	r.sURadius = uniform(shadeProg, "uRadius")

	// Panel texture, filled on first UploadPanel.
	gl.GenTextures(1, &r.panelTex)
	gl.BindTexture(gl.TEXTURE_2D, r.panelTex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.UseProgram(panelProg)
	r.pURect = uniform(panelProg, "uRect")
	r.pUWindow = uniform(panelProg, "uWindow")
	r.pUAlpha = uniform(panelProg, "uAlpha")
	gl.Uniform1i(uniform(panelProg, "uTex"), 0)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.quadVBO != 0 {
		gl.DeleteBuffers(1, &r.quadVBO)
	}
	if r.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &r.quadVAO)
	}
	for _, id := range []uint32{r.contentTex, r.panelTex} {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
	for _, id := range []uint32{r.contentProg, r.shadeProg, r.panelProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// DrawContent clears the framebuffer, draws the content with p and then
// shades the whole window outside the flashlight circle.
func (r *Renderer) DrawContent(p view.RenderParams, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Disable(gl.BLEND)

	gl.UseProgram(r.contentProg)
	gl.BindVertexArray(r.quadVAO)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.contentTex)

	gl.Uniform2f(r.cUContentSize, r.contentSize[0], r.contentSize[1])
	gl.Uniform2f(r.cUWindow, p.WindowSize[0], p.WindowSize[1])
	gl.Uniform2f(r.cUCamera, p.CameraPosition[0], p.CameraPosition[1])
	gl.Uniform1f(r.cUScale, p.CameraScale)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	if p.FlashShadow <= 0 {
		return
	}
	ratio := float32(1)
	if p.WindowSize[0] > 0 {
		ratio = float32(fbW) / p.WindowSize[0]
	}
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(r.shadeProg)
	gl.Uniform4f(r.sURect, 0, 0, p.WindowSize[0], p.WindowSize[1])
	gl.Uniform2f(r.sUWindow, p.WindowSize[0], p.WindowSize[1])
	gl.Uniform2f(r.sUCursor, p.CursorScreenPos[0], p.CursorScreenPos[1])
	gl.Uniform1f(r.sUPixelRatio, ratio)
	gl.Uniform1f(r.sUScale, p.CameraScale)
	gl.Uniform1f(r.sUShadow, p.FlashShadow)
	gl.Uniform1f(r.sURadius, p.FlashRadius)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// UploadPanel replaces the panel texture.
func (r *Renderer) UploadPanel(img *image.RGBA) {
	b := img.Bounds()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.panelTex)
	if b.Size() == r.panelSize {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(b.Dx()), int32(b.Dy()),
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
		return
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	r.panelSize = b.Size()
}

// DrawPanel draws the uploaded panel at (x, y) in window coordinates.
func (r *Renderer) DrawPanel(x, y int, alpha float32, window [2]float32) {
	if alpha <= 0 || r.panelSize == (image.Point{}) {
		return
	}
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(r.panelProg)
	gl.BindVertexArray(r.quadVAO)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.panelTex)

	gl.Uniform4f(r.pURect, float32(x), float32(y), float32(r.panelSize.X), float32(r.panelSize.Y))
	gl.Uniform2f(r.pUWindow, window[0], window[1])
	gl.Uniform1f(r.pUAlpha, alpha)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}
