package core

import "testing"

func TestEventBus_DispatchOrderAndDrain(t *testing.T) {
	eb := NewEventBus()
	var got []EventType
	eb.On(EvtSound, func(e Event) { got = append(got, e.Type) })
	eb.On(EvtExplosion, func(e Event) { got = append(got, e.Type) })

	eb.Emit(Event{Type: EvtExplosion})
	eb.Emit(Event{Type: EvtLevelUp})
	eb.Emit(Event{Type: EvtSound})
	if len(eb.Pending()) != 3 {
		t.Fatalf("pending = %d, want 3", len(eb.Pending()))
	}

	events := eb.Dispatch()
	if len(events) != 3 || events[1].Type != EvtLevelUp {
		t.Errorf("returned events = %+v", events)
	}
	if len(got) != 2 || got[0] != EvtExplosion || got[1] != EvtSound {
		t.Errorf("handled = %v", got)
	}
	if len(eb.Pending()) != 0 || len(eb.Dispatch()) != 0 {
		t.Error("queue not drained")
	}
}

func TestEventBus_EmitDuringDispatchWaitsForNextRound(t *testing.T) {
	eb := NewEventBus()
	eb.On(EvtGameOver, func(Event) { eb.Emit(Event{Type: EvtSound}) })
	eb.Emit(Event{Type: EvtGameOver})

	if n := len(eb.Dispatch()); n != 1 {
		t.Fatalf("first dispatch = %d events, want 1", n)
	}
	if n := len(eb.Dispatch()); n != 1 {
		t.Errorf("second dispatch = %d events, want 1", n)
	}
}

func TestWorld_AfterStampsDueTick(t *testing.T) {
	w := NewWorld(800, 600, NewRNG(1))
	w.TickCount = 10
	w.After(3, EvtSound, SndPowerupChime)

	for tick := uint64(11); tick <= 13; tick++ {
		w.TickCount = tick
		w.flushDelayed()
		events := w.Events.Dispatch()
		if tick < 13 && len(events) != 0 {
			t.Fatalf("tick %d: early delivery %+v", tick, events)
		}
		if tick == 13 {
			if len(events) != 1 || events[0].Tick != 13 || events[0].Payload != SndPowerupChime {
				t.Fatalf("tick 13: events = %+v", events)
			}
		}
	}
}

func TestWorld_BurstAndExplode(t *testing.T) {
	w := NewWorld(800, 600, NewRNG(1))
	w.Burst(10, 20, 8, ColorEnemyHit)
	if len(w.Particles) != 8 {
		t.Fatalf("particles = %d, want 8", len(w.Particles))
	}
	for _, p := range w.Particles {
		if p.X != 10 || p.Y != 20 || p.Life != ParticleLife || p.Color != ColorEnemyHit {
			t.Fatalf("particle = %+v", p)
		}
		if p.VX < -3 || p.VX >= 3 || p.Size < 1 || p.Size >= 4 {
			t.Errorf("particle out of range: %+v", p)
		}
	}
	w.Explode(0, 0)
	if len(w.Particles) != 8+45 {
		t.Errorf("particles after explosion = %d, want 53", len(w.Particles))
	}
	events := w.Events.Dispatch()
	if countType(events, EvtParticles) != 1 || countType(events, EvtExplosion) != 1 {
		t.Errorf("events = %+v", events)
	}
}

func TestWorld_ParticlesDoNotTouchGameplayRNG(t *testing.T) {
	rng := &SeqRNG{Values: []float64{0.1}}
	w := NewWorld(800, 600, rng)
	w.Explode(100, 100)
	if rng.Draws() != 0 {
		t.Errorf("explosion drew %d gameplay values", rng.Draws())
	}
}

func TestWorld_OnScreen(t *testing.T) {
	w := NewWorld(800, 600, NewRNG(1))
	cases := []struct {
		x, y float64
		want bool
	}{
		{0, 0, true},
		{850, 300, true},
		{851, 300, false},
		{-50, -50, true},
		{-51, 0, false},
		{400, 651, false},
	}
	for _, tc := range cases {
		if got := w.OnScreen(&Enemy{X: tc.x, Y: tc.y}); got != tc.want {
			t.Errorf("OnScreen(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestWorld_UnknownStrictPanics(t *testing.T) {
	w := NewWorld(800, 600, NewRNG(1))
	w.Unknown("enemy", 99) // lenient: logs only

	w.Strict = true
	defer func() {
		if recover() == nil {
			t.Error("strict world did not panic")
		}
	}()
	w.Unknown("enemy", 99)
}
