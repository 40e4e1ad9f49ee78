package core

import (
	"fmt"
	"image/color"
	"log"
)

const (
	// OnScreenMargin is how far outside the playfield an enemy still counts as on screen.
	OnScreenMargin = 50

	ParticleLife = 30

	// Tick delays for secondary tones, at 60 ticks per second.
	ChimeDelay        = 6
	GameOverTailDelay = 12
)

// World holds all entity pools and the progression of the current run.
// It is owned by the GameLoop and mutated only from its tick.
type World struct {
	Width, Height float64

	Players      [2]*Player
	Bullets      []*Bullet
	EnemyBullets []*EnemyBullet
	Enemies      []*Enemy
	Particles    []*Particle
	Powerups     []*Powerup

	State     GameState
	Score     int
	Level     int
	Frame     uint64 // gameplay ticks since the run started
	TickCount uint64 // every tick, in any state
	Input     Snapshot
	Music     bool
	Strict    bool // panic on unknown behavior tags instead of falling back

	RNG    RNG // gameplay draws
	FX     RNG // cosmetic draws (particle spread)
	Events *EventBus

	systems []System
	delayed []delayedEvent
}

// System processes the world each tick
type System interface {
	Update(w *World)
	Priority() int
}

// Ambient is implemented by systems that keep running while not playing.
type Ambient interface {
	Ambient() bool
}

// NewWorld creates an empty world on the title screen.
func NewWorld(width, height float64, rng RNG) *World {
	w := &World{
		Width:  width,
		Height: height,
		State:  StateStart,
		Level:  1,
		Music:  true,
		RNG:    rng,
		FX:     NewRNG(1),
		Events: NewEventBus(),
	}
	w.Players[0] = NewPlayer(0, width, height)
	w.Players[1] = NewPlayer(1, width, height)
	return w
}

// Reset clears every pool, pending delayed events, and restores score,
// level and both players. Whether player 2 is active is kept.
func (w *World) Reset() {
	w.Score = 0
	w.Level = 1
	w.Frame = 0
	for _, p := range w.Players {
		p.Respawn(w.Height)
	}
	w.Bullets = nil
	w.EnemyBullets = nil
	w.Enemies = nil
	w.Particles = nil
	w.Powerups = nil
	w.delayed = nil
}

// AddSystem registers a system
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	// Sort by priority (simple insertion)
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i].Priority() < w.systems[i-1].Priority() {
			w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
		}
	}
}

// Tick runs all systems once. Outside StatePlaying only Ambient systems run.
// The state is sampled once so a game over mid-tick still finishes the pipeline.
func (w *World) Tick() {
	playing := w.State == StatePlaying
	for _, s := range w.systems {
		if playing || isAmbient(s) {
			s.Update(w)
		}
	}
}

func isAmbient(s System) bool {
	a, ok := s.(Ambient)
	return ok && a.Ambient()
}

// Emit queues an event stamped with the current tick.
func (w *World) Emit(t EventType, payload interface{}) {
	w.Events.Emit(Event{Type: t, Tick: w.TickCount, Payload: payload})
}

// PlaySound requests a sound from the presentation layer.
func (w *World) PlaySound(id SoundID) {
	w.Emit(EvtSound, id)
}

// After queues an event to be emitted delay ticks from now.
func (w *World) After(delay int, t EventType, payload interface{}) {
	w.delayed = append(w.delayed, delayedEvent{
		due:   w.TickCount + uint64(delay),
		event: Event{Type: t, Payload: payload},
	})
}

func (w *World) flushDelayed() {
	kept := w.delayed[:0]
	for _, d := range w.delayed {
		if d.due > w.TickCount {
			kept = append(kept, d)
			continue
		}
		d.event.Tick = w.TickCount
		w.Events.Emit(d.event)
	}
	w.delayed = kept
}

// Burst spawns count particles at (x,y) and issues one particle-effect request.
func (w *World) Burst(x, y float64, count int, c color.RGBA) {
	w.spawnParticles(x, y, count, c)
	w.Emit(EvtParticles, ParticleEffect{X: x, Y: y, Count: count, Color: c})
}

// Explode spawns the three-color explosion cloud centered on (x,y).
func (w *World) Explode(x, y float64) {
	w.spawnParticles(x, y, 20, explosionOrange)
	w.spawnParticles(x, y, 15, explosionYellow)
	w.spawnParticles(x, y, 10, explosionRed)
	w.Emit(EvtExplosion, Explosion{X: x, Y: y})
}

func (w *World) spawnParticles(x, y float64, count int, c color.RGBA) {
	for i := 0; i < count; i++ {
		w.Particles = append(w.Particles, &Particle{
			X:       x,
			Y:       y,
			VX:      (w.FX.Float64() - 0.5) * 6,
			VY:      (w.FX.Float64() - 0.5) * 6,
			Life:    ParticleLife,
			MaxLife: ParticleLife,
			Color:   c,
			Size:    w.FX.Float64()*3 + 1,
		})
	}
}

// OnScreen reports whether e lies within OnScreenMargin of the playfield.
func (w *World) OnScreen(e *Enemy) bool {
	return e.X >= -OnScreenMargin && e.X <= w.Width+OnScreenMargin &&
		e.Y >= -OnScreenMargin && e.Y <= w.Height+OnScreenMargin
}

// OnScreenCount is the population the spawn floor is measured against.
func (w *World) OnScreenCount() int {
	n := 0
	for _, e := range w.Enemies {
		if w.OnScreen(e) {
			n++
		}
	}
	return n
}

// Start begins a fresh run from the title or game over screen.
func (w *World) Start() {
	w.Reset()
	w.State = StatePlaying
	w.Emit(EvtGameStart, nil)
	w.PlaySound(SndStart)
	w.After(ChimeDelay, EvtSound, SndStartChime)
}

// GameOver ends the run. Only the first call while playing has an effect.
func (w *World) GameOver() {
	if w.State != StatePlaying {
		return
	}
	w.State = StateGameOver
	w.Emit(EvtGameOver, nil)
	w.PlaySound(SndGameOver)
	w.After(GameOverTailDelay, EvtSound, SndGameOverTail)
}

// Unknown handles a behavior tag missing from a dispatch table.
// Strict worlds panic; otherwise it logs and the caller falls back to normal.
func (w *World) Unknown(table string, tag int) {
	msg := fmt.Sprintf("%s: unknown kind %d", table, tag)
	if w.Strict {
		panic(msg)
	}
	log.Printf("%s, using normal", msg)
}

// Stats summarizes the run for the HUD.
func (w *World) Stats() Stats {
	s := Stats{
		Frame:   w.Frame,
		Score:   w.Score,
		Level:   w.Level,
		Player2: w.Players[1].Active,
	}
	for i, p := range w.Players {
		s.Health[i] = p.Health
		s.MaxHealth[i] = p.MaxHealth
	}
	for _, e := range w.Enemies {
		if !w.OnScreen(e) {
			continue
		}
		s.OnScreenTotal++
		if e.Kind < NumEnemyKinds {
			s.OnScreen[e.Kind]++
		}
	}
	return s
}
