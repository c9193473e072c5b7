package view

import "sync"

type EventKind int

const (
	EventCursor EventKind = iota // hover move
	EventDragStart
	EventDragMove
	EventDragEnd
	EventWheel
	EventToggleFlashlight
	EventResetView
)

var eventNames = [...]string{
	EventCursor:           "cursor",
	EventDragStart:        "drag-start",
	EventDragMove:         "drag-move",
	EventDragEnd:          "drag-end",
	EventWheel:            "wheel",
	EventToggleFlashlight: "toggle-flashlight",
	EventResetView:        "reset-view",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Mods are the modifier keys held during a wheel event.
type Mods struct {
	Shift, Ctrl bool
}

type Event struct {
	Kind    EventKind
	Pos     Vec2    // screen space; cursor and drag events
	Notches float64 // wheel detents, positive away from the user
	Mods    Mods
}

type EventHandler func(Event)

// Queue buffers input events between ticks. Pushing is safe from any
// goroutine; the scheduler drains it once per tick.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

func (q *Queue) Push(e Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// Drain appends all queued events to buf in arrival order and empties the
// queue.
func (q *Queue) Drain(buf []Event) []Event {
	q.mu.Lock()
	buf = append(buf, q.events...)
	q.events = q.events[:0]
	q.mu.Unlock()
	return buf
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
