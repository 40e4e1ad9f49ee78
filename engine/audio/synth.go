package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// oscillator generates a raw periodic wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay ramps a stream from full gain down to floor over its duration,
// the same curve as an exponential gain ramp.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
	floor    float64
}

// NewDecay shapes s with an exponential fade to floor across duration.
func NewDecay(s beep.Streamer, duration time.Duration, floor float64, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, total: rate.N(duration), floor: floor}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := d.floor
		if d.total > 0 && d.position < d.total {
			gain = math.Pow(d.floor, float64(d.position)/float64(d.total))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is handled as silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Tone is a single synthesized note.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     WaveType
	Volume   float64
}

// Streamer renders the tone scaled by master.
func (t Tone) Streamer(rate beep.SampleRate, master float64) beep.Streamer {
	osc := NewOscillator(t.Freq, t.Duration, t.Wave, rate)
	return newVolume(NewDecay(osc, t.Duration, 0.1, rate), t.Volume*master)
}
