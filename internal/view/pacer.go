package view

import "time"

// Pacer turns elapsed wall-clock time into a number of due ticks. After a
// stall at most MaxCatchUp ticks are due; the rest of the backlog is dropped.
type Pacer struct {
	interval   float64 // seconds
	maxCatchUp int
	acc        float64
}

// NewPacer returns a pacer whose first Advance yields one tick.
func NewPacer(interval time.Duration, maxCatchUp int) *Pacer {
	s := interval.Seconds()
	return &Pacer{interval: s, maxCatchUp: max(maxCatchUp, 1), acc: s}
}

// Advance adds elapsed seconds and returns the ticks now due and the time
// left until the next one.
func (p *Pacer) Advance(elapsed float64) (ticks int, wait float64) {
	if elapsed > 0 {
		p.acc += elapsed
	}
	if limit := p.interval * float64(p.maxCatchUp); p.acc > limit {
		p.acc = limit
	}
	for p.acc >= p.interval {
		p.acc -= p.interval
		ticks++
	}
	return ticks, p.interval - p.acc
}
