// Package overlay runs the magnifier window: a glfw/OpenGL front end that
// feeds input into a view.Scheduler and draws the frames it produces.
package overlay

import (
	"errors"
	"fmt"
	"image"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"magnify/internal/audio"
	"magnify/internal/config"
	"magnify/internal/hud"
	"magnify/internal/source"
	"magnify/internal/view"
)

type Options struct {
	Config  config.Config
	Content *image.RGBA
	Verbose bool // log every applied event
}

// app is the scheduler's presenter and owns everything drawn per frame.
type app struct {
	window *glfw.Window
	rend   *Renderer
	picker *source.Picker
	panel  *hud.Panel
	sound  *audio.Player
	sched  *view.Scheduler

	margin  int
	dt      float32
	frame   view.Frame
	readout source.Readout
}

// Present records the tick's frame and advances the panel fade. Drawing
// waits for draw so a catch-up burst renders only its last frame.
func (a *app) Present(f view.Frame) {
	a.frame = f
	a.readout = a.picker.Pick(f.Pixel)
	a.panel.Update(a.dt)
}

func (a *app) draw() {
	fbW, fbH := a.window.GetFramebufferSize()
	if fbW <= 0 || fbH <= 0 {
		return
	}
	f := a.frame
	a.rend.DrawContent(f.Params, fbW, fbH)

	alpha := a.panel.Alpha()
	if alpha <= 0 {
		return
	}
	a.panel.SetLines(hud.Lines(f, a.readout), a.readout.RGB)
	if a.panel.Dirty() {
		a.rend.UploadPanel(a.panel.Image())
	}
	a.rend.DrawPanel(a.margin, a.margin, alpha, f.Params.WindowSize)
}

func (a *app) togglePanel() { a.panel.Toggle() }

func (a *app) copyColor() {
	a.window.SetClipboardString(a.readout.Hex)
	a.sound.Play(audio.CueCopy)
	log.Printf("copied %s", a.readout)
}

// Run opens the overlay on opts.Content and blocks until it is closed.
func Run(opts Options) error {
	if opts.Content == nil || opts.Content.Bounds().Empty() {
		return errors.New("overlay: no content")
	}
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return err
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	cb := opts.Content.Bounds()
	window, err := initWindow(cfg.Window, cb.Dx(), cb.Dy())
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	rend, err := NewRenderer(opts.Content)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	panel, err := hud.NewPanel(cfg.Panel.FontSize, cfg.Panel.FadeSeconds)
	if err != nil {
		return fmt.Errorf("panel: %w", err)
	}
	panel.SetVisible(cfg.Panel.Visible)

	var sound *audio.Player
	if cfg.Audio.Enabled {
		if sound, err = audio.New(cfg.Audio.Volume); err != nil {
			log.Printf("audio init failed (continuing without sound): %v", err)
			sound = nil
		}
	}

	winW, winH := window.GetSize()
	tune := cfg.Tuning()
	a := &app{
		window: window,
		rend:   rend,
		picker: source.NewPicker(opts.Content),
		panel:  panel,
		sound:  sound,
		margin: cfg.Panel.Margin,
		dt:     float32(tune.DT()),
	}
	sched := view.NewScheduler(
		view.Vec2{X: float64(winW), Y: float64(winH)},
		view.Vec2{X: float64(cb.Dx()), Y: float64(cb.Dy())},
		tune, a)
	a.sched = sched
	subscribe(a, opts.Verbose)

	NewInput(sched, a).Install(window)
	if x, y := window.GetCursorPos(); x >= 0 && y >= 0 {
		sched.Push(view.Event{Kind: view.EventCursor, Pos: view.Vec2{X: x, Y: y}})
	}

	loop(a, cfg.Window)
	return nil
}

func subscribe(a *app, verbose bool) {
	a.sched.Subscribe(view.EventToggleFlashlight, func(view.Event) {
		if a.sched.Flash.Enabled {
			a.sound.Play(audio.CueFlashOn)
		} else {
			a.sound.Play(audio.CueFlashOff)
		}
	})
	a.sched.Subscribe(view.EventResetView, func(view.Event) {
		a.panel.SetVisible(false)
		a.sound.Play(audio.CueReset)
	})
	if !verbose {
		return
	}
	for _, k := range []view.EventKind{
		view.EventDragStart, view.EventDragEnd, view.EventWheel,
		view.EventToggleFlashlight, view.EventResetView,
	} {
		a.sched.Subscribe(k, func(e view.Event) {
			c := a.sched.Camera
			log.Printf("%v at (%.0f,%.0f): scale=%.2f dscale=%.2f pos=(%.1f,%.1f) flash=%v r=%.0f",
				e.Kind, a.sched.Cursor().X, a.sched.Cursor().Y,
				c.Scale, c.DeltaScale, c.Position.X, c.Position.Y,
				a.sched.Flash.Enabled, a.sched.Flash.Radius)
		})
	}
}

// loop runs the ticks the pacer says are due, then draws and swaps once.
func loop(a *app, cfg config.WindowConfig) {
	pacer := view.NewPacer(cfg.Interval, cfg.MaxCatchUp)
	last := glfw.GetTime()
	for !a.window.ShouldClose() {
		now := glfw.GetTime()
		due, wait := pacer.Advance(now - last)
		last = now

		ticked := false
		for i := 0; i < due; i++ {
			if a.sched.Tick() {
				ticked = true
			}
		}
		if ticked {
			a.draw()
			a.window.SwapBuffers()
		}
		glfw.WaitEventsTimeout(wait)
	}
}
