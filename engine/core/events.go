package core

import "image/color"

// Event represents a game event
type Event struct {
	Type    EventType
	Tick    uint64
	Payload interface{}
}

type EventType uint16

const (
	EvtParticles EventType = iota // ParticleEffect
	EvtExplosion                  // Explosion
	EvtSound                      // SoundID
	EvtEnemyHit                   // *Enemy
	EvtEnemyKilled                // Kill
	EvtPlayerHit                  // PlayerHit
	EvtPowerupCollected           // PlayerHit with negative damage
	EvtLevelUp                    // int, the new level
	EvtGameStart                  // nil
	EvtGameOver                   // nil
	EvtPaused                     // bool, true when entering pause
	EvtPlayer2Toggled             // bool, new active flag
	EvtMusicToggled               // bool, new music flag
	EvtStats                      // Stats
)

// SoundID names a sound the presentation layer should play.
type SoundID string

const (
	SndShot         SoundID = "shot"
	SndExplosion    SoundID = "explosion"
	SndPlayerHit    SoundID = "player_hit"
	SndMineBlast    SoundID = "mine_blast"
	SndPowerup      SoundID = "powerup"
	SndPowerupChime SoundID = "powerup_chime"
	SndStart        SoundID = "start"
	SndStartChime   SoundID = "start_chime"
	SndGameOver     SoundID = "game_over"
	SndGameOverTail SoundID = "game_over_tail"
	SndPlayer2Join  SoundID = "player2_join"
	SndPlayer2Leave SoundID = "player2_leave"
)

// ParticleEffect is a request for a burst of sparks.
type ParticleEffect struct {
	X, Y  float64
	Count int
	Color color.RGBA
}

// Explosion marks an enemy or mine blowing up at a center point.
type Explosion struct {
	X, Y float64
}

// Kill is emitted once per enemy destroyed by damage.
type Kill struct {
	Kind  EnemyKind
	X, Y  float64
	Score int
}

// PlayerHit reports a health change on a player slot.
type PlayerHit struct {
	Slot   int
	Amount int
	Health int
}

// Stats is published once per gameplay tick.
type Stats struct {
	Frame         uint64
	Score         int
	Level         int
	Health        [2]int
	MaxHealth     [2]int
	Player2       bool
	OnScreen      [NumEnemyKinds]int
	OnScreenTotal int
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Pending returns the events queued since the last Dispatch.
func (eb *EventBus) Pending() []Event {
	return eb.queue
}

// Dispatch delivers all queued events and returns them in emission order.
func (eb *EventBus) Dispatch() []Event {
	events := eb.queue
	eb.queue = nil
	for _, e := range events {
		if handlers, ok := eb.listeners[e.Type]; ok {
			for _, h := range handlers {
				h(e)
			}
		}
	}
	return events
}

// delayedEvent is emitted once the world's tick counter reaches due.
type delayedEvent struct {
	due   uint64
	event Event
}
