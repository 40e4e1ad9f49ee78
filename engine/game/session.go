// Package game assembles a playable session: world, pipeline and backdrop.
package game

import (
	"github.com/google/uuid"

	"github.com/1siamBot/shooter-engine/engine/background"
	"github.com/1siamBot/shooter-engine/engine/core"
	"github.com/1siamBot/shooter-engine/engine/spawn"
	"github.com/1siamBot/shooter-engine/engine/systems"
)

// Options configure a new session.
type Options struct {
	Width, Height float64
	TickRate      float64
	Seed          int64
	Strict        bool
	TwoPlayer     bool
	// RNG replaces the seeded source for gameplay draws when set.
	RNG core.RNG
}

// DefaultOptions is an 800x600 field at 60 ticks per second.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 600, TickRate: 60}
}

// Session is one running game
type Session struct {
	ID         uuid.UUID
	Seed       int64
	Loop       *core.GameLoop
	World      *core.World
	Background *background.Field
	stats      core.Stats
}

// New builds a session waiting on the title screen.
func New(opts Options) *Session {
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.TickRate <= 0 {
		opts.TickRate = DefaultOptions().TickRate
	}
	rng := opts.RNG
	if rng == nil {
		rng = core.NewRNG(opts.Seed)
	}

	w := core.NewWorld(opts.Width, opts.Height, rng)
	w.Strict = opts.Strict
	w.Players[1].Active = opts.TwoPlayer

	field := background.New(opts.Width, opts.Height, core.NewRNG(opts.Seed+1))
	systems.Register(w, field, spawn.NewController())

	s := &Session{
		ID:         uuid.New(),
		Seed:       opts.Seed,
		Loop:       core.NewGameLoop(w, opts.TickRate),
		World:      w,
		Background: field,
	}
	s.stats = w.Stats()
	w.Events.On(core.EvtStats, func(e core.Event) {
		if st, ok := e.Payload.(core.Stats); ok {
			s.stats = st
		}
	})
	return s
}

// Tick advances one fixed step.
func (s *Session) Tick(in core.Snapshot) []core.Event {
	return s.Loop.Tick(in)
}

// On subscribes to events from the session's bus.
func (s *Session) On(t core.EventType, h core.EventHandler) {
	s.World.Events.On(t, h)
}

// Stats returns the most recently published stats.
func (s *Session) Stats() core.Stats {
	return s.stats
}

func (s *Session) State() core.GameState {
	return s.World.State
}
