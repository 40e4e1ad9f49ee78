package core

// GameState represents the overall game state
type GameState uint8

const (
	StateStart GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

// LevelScoreStep is the score needed per level.
const LevelScoreStep = 1000

// GameLoop advances the world one fixed step per call. Timing is driven
// by the caller (ebiten's TPS, a terminal ticker, or a replay), never by
// wall-clock reads inside the simulation.
type GameLoop struct {
	World    *World
	TickRate float64 // fixed ticks per second
}

// NewGameLoop wraps a world with a fixed tick rate
func NewGameLoop(w *World, tickRate float64) *GameLoop {
	return &GameLoop{
		World:    w,
		TickRate: tickRate,
	}
}

// Tick consumes one input snapshot, runs the pipeline and returns the
// events produced during the step, after they have been dispatched.
func (gl *GameLoop) Tick(in Snapshot) []Event {
	w := gl.World
	w.TickCount++
	w.Input = in
	w.flushDelayed()
	gl.handleToggles(in)

	playing := w.State == StatePlaying
	if playing {
		w.Frame++
	}
	w.Tick()

	if playing {
		gl.checkLevel()
		w.Emit(EvtStats, w.Stats())
	}
	return w.Events.Dispatch()
}

// checkLevel raises the level by at most one per tick, even when the
// score jumped past several thresholds at once.
func (gl *GameLoop) checkLevel() {
	w := gl.World
	if w.Score > w.Level*LevelScoreStep {
		w.Level++
		w.Emit(EvtLevelUp, w.Level)
	}
}

func (gl *GameLoop) handleToggles(in Snapshot) {
	if in.Pressed(ActStart) {
		switch gl.World.State {
		case StateStart, StateGameOver:
			gl.World.Start()
		}
	}
	if in.Pressed(ActPause) {
		gl.TogglePause()
	}
	if in.Pressed(ActTogglePlayer2) {
		gl.TogglePlayer2()
	}
	if in.Pressed(ActToggleMusic) {
		gl.ToggleMusic()
	}
}

// Play starts a run, or resumes a paused one
func (gl *GameLoop) Play() {
	switch gl.World.State {
	case StatePaused:
		gl.World.State = StatePlaying
		gl.World.Emit(EvtPaused, false)
	case StateStart, StateGameOver:
		gl.World.Start()
	}
}

// Pause freezes gameplay; the background keeps moving
func (gl *GameLoop) Pause() {
	if gl.World.State != StatePlaying {
		return
	}
	gl.World.State = StatePaused
	gl.World.Emit(EvtPaused, true)
}

func (gl *GameLoop) TogglePause() {
	switch gl.World.State {
	case StatePlaying:
		gl.Pause()
	case StatePaused:
		gl.Play()
	}
}

// TogglePlayer2 adds or removes the second local player. Joining always
// starts from full health at the player 2 spawn point.
func (gl *GameLoop) TogglePlayer2() {
	w := gl.World
	p := w.Players[1]
	p.Active = !p.Active
	if p.Active {
		p.Respawn(w.Height)
		w.PlaySound(SndPlayer2Join)
	} else {
		w.PlaySound(SndPlayer2Leave)
	}
	w.Emit(EvtPlayer2Toggled, p.Active)
}

func (gl *GameLoop) ToggleMusic() {
	gl.World.Music = !gl.World.Music
	gl.World.Emit(EvtMusicToggled, gl.World.Music)
}

// CurrentTick returns the current simulation tick
func (gl *GameLoop) CurrentTick() uint64 {
	return gl.World.TickCount
}
