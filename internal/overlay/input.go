package overlay

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"magnify/internal/view"
)

// Actions handled outside the scheduler.
type actions interface {
	togglePanel()
	copyColor()
}

// Input translates glfw callbacks into scheduler events.
type Input struct {
	sched    *view.Scheduler
	act      actions
	dragging bool
}

func NewInput(sched *view.Scheduler, act actions) *Input {
	return &Input{sched: sched, act: act}
}

// Install registers the callbacks on window.
func (in *Input) Install(window *glfw.Window) {
	window.SetCursorPosCallback(in.onCursor)
	window.SetMouseButtonCallback(in.onButton)
	window.SetScrollCallback(in.onScroll)
	window.SetKeyCallback(in.onKey)
}

func (in *Input) onCursor(_ *glfw.Window, x, y float64) {
	kind := view.EventCursor
	if in.dragging {
		kind = view.EventDragMove
	}
	in.sched.Push(view.Event{Kind: kind, Pos: view.Vec2{X: x, Y: y}})
}

func (in *Input) onButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	x, y := w.GetCursorPos()
	pos := view.Vec2{X: x, Y: y}
	switch action {
	case glfw.Press:
		in.dragging = true
		in.sched.Push(view.Event{Kind: view.EventDragStart, Pos: pos})
	case glfw.Release:
		in.dragging = false
		in.sched.Push(view.Event{Kind: view.EventDragEnd, Pos: pos})
	}
}

// Scroll callbacks carry no modifiers, so they are read from key state.
func (in *Input) onScroll(w *glfw.Window, _, yoff float64) {
	in.sched.Push(view.Event{
		Kind:    view.EventWheel,
		Notches: yoff,
		Mods: view.Mods{
			Shift: pressed(w, glfw.KeyLeftShift) || pressed(w, glfw.KeyRightShift),
			Ctrl:  pressed(w, glfw.KeyLeftControl) || pressed(w, glfw.KeyRightControl),
		},
	})
}

// Toggles fire on release. Quitting fires on press.
func (in *Input) onKey(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		quit := key == glfw.KeyEscape ||
			(key == glfw.KeyF12 && mods&glfw.ModShift != 0 && mods&glfw.ModControl != 0)
		if quit {
			w.SetShouldClose(true)
		}
	case glfw.Release:
		switch key {
		case glfw.KeyF:
			in.sched.Push(view.Event{Kind: view.EventToggleFlashlight})
		case glfw.KeyR:
			in.sched.Push(view.Event{Kind: view.EventResetView})
		case glfw.KeyS:
			in.act.togglePanel()
		case glfw.KeyC:
			in.act.copyColor()
		}
	}
}

func pressed(w *glfw.Window, k glfw.Key) bool { return w.GetKey(k) == glfw.Press }
