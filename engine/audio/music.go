package audio

import (
	"time"

	"github.com/gopxl/beep"
)

const beat = 500 * time.Millisecond

type note struct {
	freq  float64
	beats int
}

var (
	melody = []note{
		{220, 2}, {277.18, 1}, {329.63, 1}, {220, 2},
		{246.94, 1}, {277.18, 1}, {329.63, 2}, {277.18, 2},
	}
	bass = []note{
		{110, 4}, {123.47, 2}, {138.59, 2},
	}
)

// LoopLength is the duration of one pass of the background music.
const LoopLength = 16 * beat

// Music renders one eight-second pass of the background theme into a
// buffer and loops it forever.
func Music(rate beep.SampleRate, master float64) beep.Streamer {
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)
	buf.Append(beep.Take(rate.N(LoopLength), beep.Mix(
		beep.Silence(rate.N(LoopLength)),
		voice(rate, melody, WaveSquare),
		voice(rate, bass, WaveTriangle),
		Tone{440, 8 * beat, WaveSaw, 0.1}.Streamer(rate, 1),
		beep.Seq(beep.Silence(rate.N(2*beat)), Tone{880, 4 * beat, WaveSine, 0.1}.Streamer(rate, 1)),
	)))
	return newVolume(beep.Loop(-1, buf.Streamer(0, buf.Len())), master)
}

// voice plays notes back to back
func voice(rate beep.SampleRate, notes []note, wave WaveType) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		d := time.Duration(n.beats) * beat
		parts = append(parts, Tone{n.freq, d, wave, 0.1}.Streamer(rate, 1))
	}
	return beep.Seq(parts...)
}
