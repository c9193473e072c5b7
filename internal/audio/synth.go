package audio

import "math"

const (
	SampleRate   = 44100
	ChannelCount = 2
	frameBytes   = 4 * ChannelCount // float32 LE per channel
)

// Cue identifies a short feedback sound.
type Cue int

const (
	CueFlashOn Cue = iota
	CueFlashOff
	CueReset
	CueCopy
)

func (c Cue) String() string {
	switch c {
	case CueFlashOn:
		return "flash-on"
	case CueFlashOff:
		return "flash-off"
	case CueReset:
		return "reset"
	case CueCopy:
		return "copy"
	}
	return "unknown"
}

// Synthesize renders a cue as interleaved stereo float32 LE samples.
func Synthesize(c Cue) []byte {
	switch c {
	case CueFlashOn:
		return sweep(0.07, 700, 1400)
	case CueFlashOff:
		return sweep(0.07, 1400, 700)
	case CueReset:
		return genReset()
	case CueCopy:
		return genCopy()
	}
	return nil
}

func makeBuf(frames int) []byte { return make([]byte, frames*frameBytes) }

// sweep is a short FM blip gliding from f0 to f1 over secs.
func sweep(secs, f0, f1 float64) []byte {
	n := int(secs * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := f0 + (f1-f0)*p
		putStereoF32(buf, i, softSat(fm(t, freq, 1.0, 0.6)*env*0.38))
	}
	return buf
}

// genReset: descending two-tone whoosh.
func genReset() []byte {
	n := SampleRate * 160 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.3, 0.4, 0.3)
		s := 0.6*math.Sin(2*math.Pi*(520-240*p)*t) + 0.4*math.Sin(2*math.Pi*(780-360*p)*t)
		putStereoF32(buf, i, softSat(s*env*0.3))
	}
	return buf
}

// genCopy: two quick rising pings.
func genCopy() []byte {
	n := SampleRate * 110 / 1000
	buf := makeBuf(n)
	half := n / 2
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		freq, p := 1320.0, float64(i)/float64(half)
		if i >= half {
			freq, p = 1760.0, float64(i-half)/float64(n-half)
		}
		env := adsr(p, 0.02, 0.6, 0.0, 0.1)
		putStereoF32(buf, i, softSat(fm(t, freq, 2.0, 0.4)*env*0.32))
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	o := i * frameBytes
	for ch := 0; ch < ChannelCount; ch++ {
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
		o += 4
	}
}

// softSat saturates gently instead of clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}
