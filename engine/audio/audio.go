package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/1siamBot/shooter-engine/engine/core"
)

// tones maps every sound the simulation can request to its synthesis.
var tones = map[core.SoundID]Tone{
	core.SndShot:         {800, 50 * time.Millisecond, WaveSquare, 0.05},
	core.SndExplosion:    {150, 300 * time.Millisecond, WaveSaw, 0.08},
	core.SndPlayerHit:    {200, 200 * time.Millisecond, WaveTriangle, 0.06},
	core.SndMineBlast:    {120, 500 * time.Millisecond, WaveSaw, 0.1},
	core.SndPowerup:      {600, 300 * time.Millisecond, WaveSine, 0.1},
	core.SndPowerupChime: {800, 200 * time.Millisecond, WaveSine, 0.08},
	core.SndStart:        {440, 100 * time.Millisecond, WaveSine, 0.1},
	core.SndStartChime:   {880, 100 * time.Millisecond, WaveSine, 0.08},
	core.SndGameOver:     {100, time.Second, WaveTriangle, 0.15},
	core.SndGameOverTail: {80, 1500 * time.Millisecond, WaveTriangle, 0.12},
	core.SndPlayer2Join:  {660, 200 * time.Millisecond, WaveSine, 0.08},
	core.SndPlayer2Leave: {440, 200 * time.Millisecond, WaveSine, 0.08},
}

// ToneFor returns the synthesis parameters of a sound.
func ToneFor(id core.SoundID) (Tone, bool) {
	t, ok := tones[id]
	return t, ok
}

// AudioManager handles music and sound effects
type AudioManager struct {
	mu           sync.Mutex
	rate         beep.SampleRate
	mixer        *beep.Mixer
	music        *beep.Ctrl
	MasterVolume float64
	MusicOn      bool
	initialized  bool

	// play hands a finished streamer to the output; replaced in tests
	play func(beep.Streamer)
}

func NewAudioManager(sampleRate int, volume float64) *AudioManager {
	am := &AudioManager{
		rate:    beep.SampleRate(sampleRate),
		mixer:   &beep.Mixer{},
		MusicOn: true,
	}
	am.SetVolume(volume)
	am.play = am.addToMixer
	return am
}

// Init opens the speaker and starts the mixer
func (am *AudioManager) Init() error {
	am.mu.Lock()
	defer am.mu.Unlock()

	if am.initialized {
		return nil
	}
	if err := speaker.Init(am.rate, am.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(am.mixer)
	am.initialized = true
	if am.MusicOn {
		am.startMusic()
	}
	return nil
}

// Close silences everything
func (am *AudioManager) Close() {
	am.mu.Lock()
	defer am.mu.Unlock()

	if !am.initialized {
		return
	}
	speaker.Lock()
	am.mixer.Clear()
	speaker.Unlock()
	am.music = nil
	am.initialized = false
}

// Attach subscribes the manager to sound and music events
func (am *AudioManager) Attach(bus *core.EventBus) {
	bus.On(core.EvtSound, func(e core.Event) {
		if id, ok := e.Payload.(core.SoundID); ok {
			am.PlaySFX(id)
		}
	})
	bus.On(core.EvtMusicToggled, func(e core.Event) {
		if on, ok := e.Payload.(bool); ok {
			am.SetMusic(on)
		}
	})
}

// PlaySFX plays a sound effect
func (am *AudioManager) PlaySFX(id core.SoundID) {
	t, ok := tones[id]
	if !ok {
		return
	}
	am.mu.Lock()
	vol := am.MasterVolume
	am.mu.Unlock()
	am.play(t.Streamer(am.rate, vol))
}

func (am *AudioManager) addToMixer(s beep.Streamer) {
	am.mu.Lock()
	defer am.mu.Unlock()
	if !am.initialized {
		return
	}
	speaker.Lock()
	am.mixer.Add(s)
	speaker.Unlock()
}

// SetMusic starts or stops the background loop
func (am *AudioManager) SetMusic(on bool) {
	am.mu.Lock()
	defer am.mu.Unlock()

	am.MusicOn = on
	if !am.initialized {
		return
	}
	if on {
		am.startMusic()
		return
	}
	if am.music != nil {
		speaker.Lock()
		am.music.Paused = true
		speaker.Unlock()
	}
}

// startMusic must be called with mu held
func (am *AudioManager) startMusic() {
	speaker.Lock()
	defer speaker.Unlock()
	if am.music != nil {
		am.music.Paused = false
		return
	}
	am.music = &beep.Ctrl{Streamer: Music(am.rate, am.MasterVolume), Paused: false}
	am.mixer.Add(am.music)
}

// SetVolume sets master volume (0-1)
func (am *AudioManager) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	am.mu.Lock()
	am.MasterVolume = v
	am.mu.Unlock()
}
