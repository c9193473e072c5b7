package view

import (
	"image"
	"math"
)

type TickState int

const (
	StateIdle    TickState = iota
	StateTicking           // inside one update+present cycle
)

// Frame is handed to the Presenter once per tick.
type Frame struct {
	Tick     uint64
	Params   RenderParams
	Sample   Vec2        // content coordinate under the cursor
	Pixel    image.Point // Sample as a pixel index
	Cursor   Vec2
	Dragging bool
	Camera   Camera // snapshot after this tick's update
	Flash    FlashLight
}

// Presenter consumes frames: draws them and reads the colour at Pixel.
type Presenter interface {
	Present(f Frame)
}

// Scheduler owns the camera, the flashlight and the input queue. Each Tick
// folds queued input into them, integrates one fixed step and presents the
// result. It is driven from a single goroutine.
type Scheduler struct {
	Camera *Camera
	Flash  *FlashLight
	Mapper Mapper

	queue    Queue
	out      Presenter
	tune     Tuning
	dt       float64
	state    TickState
	tick     uint64
	handlers map[EventKind][]EventHandler
	buf      []Event

	cursor   Vec2
	dragging bool
	lastDrag Vec2 // previous drag position, screen space

	// Drag motion is coalesced per tick so momentum reflects the whole
	// tick's movement. Ticks without motion leave momentum alone.
	pendingDrag Vec2
	dragMoved   bool
}

// NewScheduler builds a scheduler for a window of the given size showing
// content of the given size. out may be nil.
func NewScheduler(window, content Vec2, t Tuning, out Presenter) *Scheduler {
	return &Scheduler{
		Camera:   NewCamera(window, t),
		Flash:    NewFlashLight(t),
		Mapper:   Mapper{Window: window, Content: content},
		out:      out,
		tune:     t,
		dt:       t.DT(),
		handlers: make(map[EventKind][]EventHandler),
	}
}

// Push queues an input event for the next tick.
func (s *Scheduler) Push(e Event) { s.queue.Push(e) }

// Subscribe registers fn to run after an event of kind t has been applied.
func (s *Scheduler) Subscribe(t EventKind, fn EventHandler) {
	s.handlers[t] = append(s.handlers[t], fn)
}

func (s *Scheduler) State() TickState { return s.state }
func (s *Scheduler) Dragging() bool   { return s.dragging }
func (s *Scheduler) Cursor() Vec2     { return s.cursor }
func (s *Scheduler) DT() float64      { return s.dt }
func (s *Scheduler) Ticks() uint64    { return s.tick }

// Tick runs one update+present cycle. It returns false without doing
// anything when called while a tick is already in progress.
func (s *Scheduler) Tick() bool {
	if s.state == StateTicking {
		return false
	}
	s.state = StateTicking
	defer func() { s.state = StateIdle }()

	s.buf = s.queue.Drain(s.buf[:0])
	for _, e := range s.buf {
		s.apply(e)
	}
	s.flushDrag()

	s.Camera.Update(s.dt, s.dragging)
	s.Flash.Update(s.dt)
	s.tick++

	if s.out != nil {
		s.out.Present(s.Frame())
	}
	return true
}

// Frame derives the current frame without advancing anything.
func (s *Scheduler) Frame() Frame {
	return Frame{
		Tick:     s.tick,
		Params:   s.Mapper.Params(s.Camera, s.Flash, s.cursor),
		Sample:   s.Mapper.SampleContentPixel(s.Camera, s.cursor),
		Pixel:    s.Mapper.Pixel(s.Camera, s.cursor),
		Cursor:   s.cursor,
		Dragging: s.dragging,
		Camera:   *s.Camera,
		Flash:    *s.Flash,
	}
}

func (s *Scheduler) apply(e Event) {
	if e.Kind != EventDragMove {
		s.flushDrag()
	}

	switch e.Kind {
	case EventCursor:
		s.cursor = e.Pos
	case EventDragStart:
		s.cursor = e.Pos
		s.lastDrag = e.Pos
		s.dragging = true
	case EventDragMove:
		s.cursor = e.Pos
		if s.dragging {
			s.pendingDrag = s.pendingDrag.Add(s.lastDrag.Sub(e.Pos))
			s.lastDrag = e.Pos
			s.dragMoved = true
		}
	case EventDragEnd:
		s.dragging = false
	case EventWheel:
		s.wheel(e)
	case EventToggleFlashlight:
		s.Flash.Toggle()
	case EventResetView:
		s.Camera.Reset()
		s.Flash.Reset()
	}

	for _, fn := range s.handlers[e.Kind] {
		fn(e)
	}
}

// wheel routes a wheel event. With the flashlight on, Shift turns the wheel
// into a radius control and Ctrl adjusts the radius while still zooming.
func (s *Scheduler) wheel(e Event) {
	if e.Notches == 0 || math.IsNaN(e.Notches) {
		return
	}
	if s.Flash.Enabled && (e.Mods.Shift || e.Mods.Ctrl) {
		s.Flash.AdjustRadius(e.Notches)
		if e.Mods.Shift {
			return
		}
	}
	s.Camera.ApplyZoomImpulse(e.Notches*s.tune.WheelDeltaPerNotch, s.cursor)
}

func (s *Scheduler) flushDrag() {
	if !s.dragMoved {
		return
	}
	s.Camera.ApplyDragDelta(s.pendingDrag)
	s.pendingDrag = Vec2{}
	s.dragMoved = false
}
