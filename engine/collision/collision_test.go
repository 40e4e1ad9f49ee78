package collision

import (
	"testing"

	"github.com/1siamBot/shooter-engine/engine/core"
)

func newWorld() *core.World {
	w := core.NewWorld(800, 600, core.NewRNG(1))
	w.State = core.StatePlaying
	p := w.Players[0]
	p.X, p.Y = 100, 200 // hitbox (122.5, 211.25, 15, 7.5)
	return w
}

func count(events []core.Event, t core.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func TestPlayerBullets_HitOneEnemy(t *testing.T) {
	w := newWorld()
	e := &core.Enemy{X: 400, Y: 300, W: 40, H: 30, Health: 3}
	w.Enemies = []*core.Enemy{e}
	w.Bullets = []*core.Bullet{{X: 405, Y: 305, Size: 4, Life: 10}}

	PlayerBullets(w)

	if e.Health != 2 {
		t.Errorf("enemy health = %d, want 2", e.Health)
	}
	if len(w.Bullets) != 0 {
		t.Error("bullet not consumed")
	}
	events := w.Events.Dispatch()
	if n := count(events, core.EvtParticles); n != 1 {
		t.Errorf("particle requests = %d, want 1", n)
	}
	if n := count(events, core.EvtEnemyHit); n != 1 {
		t.Errorf("hit events = %d, want 1", n)
	}
	if len(w.Particles) != hitSparks {
		t.Errorf("particles = %d, want %d", len(w.Particles), hitSparks)
	}
}

func TestPlayerBullets_OneEnemyPerBullet(t *testing.T) {
	w := newWorld()
	a := &core.Enemy{X: 400, Y: 300, W: 40, H: 30, Health: 2}
	b := &core.Enemy{X: 400, Y: 300, W: 40, H: 30, Health: 2}
	w.Enemies = []*core.Enemy{a, b}
	w.Bullets = []*core.Bullet{{X: 410, Y: 310, Size: 4}}

	PlayerBullets(w)

	if a.Health+b.Health != 3 {
		t.Errorf("health = %d/%d, want one hit total", a.Health, b.Health)
	}
}

func TestPlayerBullets_Miss(t *testing.T) {
	w := newWorld()
	w.Enemies = []*core.Enemy{{X: 400, Y: 300, W: 40, H: 30, Health: 1}}
	w.Bullets = []*core.Bullet{{X: 440, Y: 300, Size: 4}} // touching the right edge
	PlayerBullets(w)
	if len(w.Bullets) != 1 || w.Enemies[0].Health != 1 {
		t.Error("edge contact counted as a hit")
	}
}

func TestEnemyBullets_DamagePlayer(t *testing.T) {
	w := newWorld()
	w.EnemyBullets = []*core.EnemyBullet{{X: 125, Y: 212, Size: 4}}

	EnemyBullets(w, w.Players[0])

	if h := w.Players[0].Health; h != core.PlayerMaxHealth-BulletDamage {
		t.Errorf("health = %d, want %d", h, core.PlayerMaxHealth-BulletDamage)
	}
	if len(w.EnemyBullets) != 0 {
		t.Error("bullet not removed")
	}
	events := w.Events.Dispatch()
	if count(events, core.EvtPlayerHit) != 1 || count(events, core.EvtSound) != 1 {
		t.Errorf("events = %+v", events)
	}
}

func TestEnemyBullets_ShrunkHitboxMisses(t *testing.T) {
	w := newWorld()
	// inside the ship's box, outside its hitbox
	w.EnemyBullets = []*core.EnemyBullet{{X: 102, Y: 202, Size: 4}}
	EnemyBullets(w, w.Players[0])
	if w.Players[0].Health != core.PlayerMaxHealth || len(w.EnemyBullets) != 1 {
		t.Error("hit registered outside the shrunk hitbox")
	}
}

func TestContact_KillsEnemyWithoutExplosion(t *testing.T) {
	w := newWorld()
	e := &core.Enemy{X: 120, Y: 205, W: 40, H: 30, Health: 3}
	w.Enemies = []*core.Enemy{e}

	Contact(w, w.Players[0])

	if e.Health != 0 {
		t.Errorf("enemy health = %d, want 0", e.Health)
	}
	if len(w.Enemies) != 1 {
		t.Error("enemy removed by contact; the enemy update removes it")
	}
	if h := w.Players[0].Health; h != core.PlayerMaxHealth-ContactDamage {
		t.Errorf("player health = %d", h)
	}
	if len(w.Particles) != 0 || w.Score != 0 {
		t.Error("contact should not explode or score")
	}
}

func TestPickups_HealCapped(t *testing.T) {
	cases := []struct{ start, want int }{
		{100, 150},
		{180, core.PlayerMaxHealth},
	}
	for _, tc := range cases {
		w := newWorld()
		p := w.Players[0]
		p.Health = tc.start
		w.Powerups = []*core.Powerup{{X: 120, Y: 205, Kind: core.PowerupHealth, Life: 100}}

		Pickups(w, p)

		if p.Health != tc.want {
			t.Errorf("start %d: health = %d, want %d", tc.start, p.Health, tc.want)
		}
		if len(w.Powerups) != 0 {
			t.Error("powerup not consumed")
		}
		events := w.Events.Dispatch()
		if count(events, core.EvtPowerupCollected) != 1 {
			t.Error("no collected event")
		}
	}
}

func TestResolve_Player1DeathEndsGame(t *testing.T) {
	w := newWorld()
	w.Players[0].Health = 3
	w.EnemyBullets = []*core.EnemyBullet{{X: 125, Y: 212, Size: 4}}
	Resolve(w)
	if w.State != core.StateGameOver {
		t.Errorf("state = %v, want game over", w.State)
	}
	if w.Players[0].Health != 0 {
		t.Errorf("health = %d, want clamped to 0", w.Players[0].Health)
	}
}

func TestResolve_Player2DeathAlone(t *testing.T) {
	w := newWorld()
	p2 := w.Players[1]
	p2.Active = true
	p2.X, p2.Y = 400, 400 // hitbox (422.5, 411.25, 15, 7.5)
	p2.Health = 3
	w.EnemyBullets = []*core.EnemyBullet{{X: 425, Y: 412, Size: 4}}

	Resolve(w)

	if p2.Health != 0 {
		t.Fatalf("p2 health = %d, want 0", p2.Health)
	}
	if w.State != core.StatePlaying {
		t.Errorf("state = %v, game should go on while player 1 lives", w.State)
	}

	// dead player 2 is skipped from now on
	w.EnemyBullets = []*core.EnemyBullet{{X: 425, Y: 412, Size: 4}}
	Resolve(w)
	if len(w.EnemyBullets) != 1 {
		t.Error("dead player 2 still absorbs bullets")
	}
}

func TestResolve_InactivePlayer2Ignored(t *testing.T) {
	w := newWorld()
	p2 := w.Players[1]
	p2.X, p2.Y = 400, 400
	w.EnemyBullets = []*core.EnemyBullet{{X: 425, Y: 412, Size: 4}}
	w.Powerups = []*core.Powerup{{X: 420, Y: 405, Life: 100}}
	Resolve(w)
	if len(w.EnemyBullets) != 1 || len(w.Powerups) != 1 {
		t.Error("inactive player 2 collided")
	}
}

func TestResolve_BulletRemovedBeforePlayer2Pass(t *testing.T) {
	w := newWorld()
	p1, p2 := w.Players[0], w.Players[1]
	p2.Active = true
	p2.X, p2.Y = p1.X, p1.Y
	w.EnemyBullets = []*core.EnemyBullet{{X: 125, Y: 212, Size: 4}}

	Resolve(w)

	if p1.Health != core.PlayerMaxHealth-BulletDamage || p2.Health != core.PlayerMaxHealth {
		t.Errorf("health p1=%d p2=%d, want only player 1 hit", p1.Health, p2.Health)
	}
}
