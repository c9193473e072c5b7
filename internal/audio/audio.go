// Package audio plays the overlay's procedural feedback cues.
package audio

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

// Player plays cues on the default output device. A nil *Player is valid
// and silent.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64

	mu    sync.Mutex
	cache map[Cue][]byte
}

// New opens the output device.
func New(volume float64) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("open audio: %w", err)
	}
	return &Player{ctx: ctx, ready: ready, volume: volume, cache: make(map[Cue][]byte)}, nil
}

// Play starts c in the background. Cues requested before the device is
// ready are dropped.
func (p *Player) Play(c Cue) {
	if p == nil || p.volume <= 0 {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}
	samples := p.samples(c)
	if len(samples) == 0 {
		log.Printf("audio: no samples for cue %v", c)
		return
	}
	go func() {
		pl := p.ctx.NewPlayer(&soundReader{data: samples})
		pl.SetVolume(p.volume)
		pl.Play()
		for pl.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		pl.Close()
	}()
}

func (p *Player) samples(c Cue) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	if b, ok := p.cache[c]; ok {
		return b
	}
	b := Synthesize(c)
	p.cache[c] = b
	return b
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(b []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(b, r.data[r.pos:])
	r.pos += n
	return n, nil
}
