package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects the oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// tone is a pitch-swept oscillator with a linear decay envelope
type tone struct {
	from, to float64 // Start and end frequency in Hz
	wave     Wave
	rate     beep.SampleRate
	noise    *rand.Rand
	phase    float64
	length   int
	position int
}

// NewTone creates a streamer that sweeps from one frequency to another and
// fades out over the given duration
func NewTone(from, to float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		from:   from,
		to:     to,
		wave:   wave,
		rate:   rate,
		noise:  rand.New(rand.NewSource(int64(from))),
		length: rate.N(duration),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}
		progress := float64(t.position) / float64(t.length)
		freq := t.from + (t.to-t.from)*progress

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = t.noise.Float64()*2 - 1
		}
		val *= 1 - progress

		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// withVolume scales a streamer by a linear gain
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain), Silent: false}
}
