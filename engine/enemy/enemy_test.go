package enemy

import (
	"math"
	"testing"

	"github.com/1siamBot/shooter-engine/engine/core"
	"github.com/1siamBot/shooter-engine/engine/projectile"
)

func newWorld(draws ...float64) *core.World {
	if len(draws) == 0 {
		draws = []float64{0.5}
	}
	w := core.NewWorld(800, 600, &core.SeqRNG{Values: draws})
	w.State = core.StatePlaying
	return w
}

func TestNew_AppliesProfileAndLevel(t *testing.T) {
	w := newWorld()
	w.Level = 3
	e := New(w, core.EnemyMini, 10, 20)
	if e.W != 25 || e.H != 20 || e.Health != 1 || e.ShootCooldown != 60 {
		t.Errorf("mini = %+v", e)
	}
	if want := 1.8 + 3*0.3; math.Abs(e.Speed-want) > 1e-9 {
		t.Errorf("speed = %v, want %v", e.Speed, want)
	}
	if e.X != 10 || e.Y != 20 || e.Kind != core.EnemyMini {
		t.Errorf("placement = %+v", e)
	}
}

func TestNew_EveryKindHasBehavior(t *testing.T) {
	w := newWorld()
	for k := core.EnemyKind(0); k < core.NumEnemyKinds; k++ {
		e := New(w, k, 0, 0)
		if e.Behavior == nil {
			t.Errorf("%v has no behavior", k)
		}
		if e.MaxHealth != MaxHealth(k) {
			t.Errorf("%v max health = %d, want %d", k, e.MaxHealth, MaxHealth(k))
		}
	}
}

func TestNew_UnknownKindFallsBack(t *testing.T) {
	w := newWorld()
	e := New(w, core.NumEnemyKinds+3, 0, 0)
	if e.Kind != core.EnemyNormal {
		t.Errorf("kind = %v, want normal", e.Kind)
	}
	if _, ok := e.Behavior.(*Gunship); !ok {
		t.Errorf("behavior = %T, want *Gunship", e.Behavior)
	}
}

func TestNew_UnknownKindPanicsWhenStrict(t *testing.T) {
	w := newWorld()
	w.Strict = true
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	New(w, core.NumEnemyKinds, 0, 0)
}

func TestUpdate_FiresOnCooldown(t *testing.T) {
	w := newWorld()
	e := New(w, core.EnemyMini, 400, 300)
	for i := 0; i < 59; i++ {
		Update(w, e)
	}
	if len(w.EnemyBullets) != 0 {
		t.Fatalf("fired early: %d bullets", len(w.EnemyBullets))
	}
	Update(w, e)
	if len(w.EnemyBullets) != 1 {
		t.Fatalf("bullets = %d after 60 ticks, want 1", len(w.EnemyBullets))
	}
	if e.ShootCooldown != ProfileOf(core.EnemyMini).Cooldown {
		t.Errorf("cooldown = %d, want reset", e.ShootCooldown)
	}
	if b := w.EnemyBullets[0]; b.Kind != core.BulletMini {
		t.Errorf("bullet kind = %v, want mini", b.Kind)
	}
}

func TestUpdate_NilBehaviorRecovers(t *testing.T) {
	w := newWorld()
	e := &core.Enemy{X: 100, Y: 100, W: 40, H: 30, Health: 1, Speed: 1, Kind: core.EnemyNormal, ShootCooldown: 10}
	Update(w, e)
	if e.Behavior == nil || e.X != 99 {
		t.Errorf("enemy = %+v", e)
	}
}

func TestGunship_BossFiresThreeWay(t *testing.T) {
	w := newWorld()
	e := New(w, core.EnemyBoss, 500, 200)
	e.Behavior.Fire(e, w)
	if len(w.EnemyBullets) != 3 {
		t.Fatalf("bullets = %d, want 3", len(w.EnemyBullets))
	}
	for _, b := range w.EnemyBullets {
		if b.Kind != core.BulletBoss {
			t.Errorf("kind = %v, want boss", b.Kind)
		}
		if b.X != e.X || b.Y != e.Y+e.H/2 {
			t.Errorf("muzzle = (%v, %v)", b.X, b.Y)
		}
	}
}

func TestSniper_HoldsFireUntilCharged(t *testing.T) {
	w := newWorld()
	e := New(w, core.EnemySniper, 500, 200)
	s := e.Behavior.(*Sniper)

	s.Charge = SniperCharge
	s.Fire(e, w)
	if len(w.EnemyBullets) != 0 {
		t.Fatal("fired at exactly the charge threshold")
	}
	s.Charge = SniperCharge + 1
	s.Fire(e, w)
	if len(w.EnemyBullets) != 1 || s.Charge != 0 {
		t.Errorf("bullets = %d, charge = %d; want 1, 0", len(w.EnemyBullets), s.Charge)
	}
}

func TestStealth_VisibilityCycle(t *testing.T) {
	w := newWorld()
	e := New(w, core.EnemyStealth, 500, 200)
	s := e.Behavior.(*Stealth)
	for tick := 1; tick <= 2*StealthCycle; tick++ {
		s.Move(e, w)
		want := tick%StealthCycle < StealthVisible
		if s.Visible != want {
			t.Fatalf("tick %d: visible = %v, want %v", tick, s.Visible, want)
		}
	}

	s.Visible = false
	s.Fire(e, w)
	if len(w.EnemyBullets) != 0 {
		t.Error("fired while hidden")
	}
	s.Visible = true
	s.Fire(e, w)
	if len(w.EnemyBullets) != 1 {
		t.Error("did not fire while visible")
	}
}

func TestSplitter_DeathSpawnsTwoMinis(t *testing.T) {
	w := newWorld(0.9) // no powerup drop
	e := New(w, core.EnemySplitter, 300, 200)
	e.Health = 0
	Destroy(w, e)

	if len(w.Enemies) != 2 {
		t.Fatalf("enemies = %d, want 2", len(w.Enemies))
	}
	want := [][2]float64{{290, 190}, {310, 210}}
	for i, m := range w.Enemies {
		if m.Kind != core.EnemyMini {
			t.Errorf("child %d kind = %v", i, m.Kind)
		}
		if m.X != want[i][0] || m.Y != want[i][1] {
			t.Errorf("child %d at (%v, %v), want %v", i, m.X, m.Y, want[i])
		}
	}
	if len(w.Powerups) != 0 {
		t.Error("unexpected powerup")
	}
}

func TestDestroy_ScoresAndDrops(t *testing.T) {
	w := newWorld(0.1)
	e := New(w, core.EnemyArmored, 300, 200)
	Destroy(w, e)

	if w.Score != Score(core.EnemyArmored) {
		t.Errorf("score = %d, want %d", w.Score, Score(core.EnemyArmored))
	}
	if len(w.Powerups) != 1 {
		t.Fatalf("powerups = %d, want 1", len(w.Powerups))
	}
	if p := w.Powerups[0]; p.X != 300 || p.Y != 220 || p.Life != core.PowerupLife {
		t.Errorf("powerup = %+v", p)
	}
	if len(w.Particles) != 45 {
		t.Errorf("particles = %d, want 45", len(w.Particles))
	}

	kills, blasts := 0, 0
	for _, ev := range w.Events.Dispatch() {
		switch ev.Type {
		case core.EvtEnemyKilled:
			kills++
		case core.EvtSound:
			if ev.Payload == core.SndExplosion {
				blasts++
			}
		}
	}
	if kills != 1 || blasts != 1 {
		t.Errorf("kills = %d, explosion sounds = %d", kills, blasts)
	}
}

func TestLaser_HoldsLineAndCharges(t *testing.T) {
	w := newWorld()
	e := New(w, core.EnemyLaser, 700, 200)
	l := e.Behavior.(*Laser)

	l.Move(e, w)
	if e.X >= 700 || l.Charge != 0 {
		t.Fatalf("should drift past the hold line: x=%v charge=%d", e.X, l.Charge)
	}
	e.X = 500
	for i := 0; i < LaserCharge; i++ {
		l.Move(e, w)
	}
	if l.Charging || e.X != 500 {
		t.Fatalf("charging=%v x=%v after %d ticks", l.Charging, e.X, LaserCharge)
	}
	l.Fire(e, w)
	if len(w.EnemyBullets) != 0 {
		t.Fatal("fired before charged")
	}
	l.Move(e, w)
	l.Fire(e, w)
	if len(w.EnemyBullets) != 1 || l.Charging || l.Charge != 0 {
		t.Errorf("bullets=%d charging=%v charge=%d", len(w.EnemyBullets), l.Charging, l.Charge)
	}
}

func TestElectric_FiveWayBurst(t *testing.T) {
	w := newWorld()
	e := New(w, core.EnemyElectric, 500, 200)
	el := e.Behavior.(*Electric)
	el.Charge = ElectricCharge + 1
	el.Fire(e, w)
	if len(w.EnemyBullets) != 5 || el.Charge != 0 {
		t.Errorf("bullets = %d, charge = %d", len(w.EnemyBullets), el.Charge)
	}
}

func TestTeleporter_JumpsIntoRightSide(t *testing.T) {
	w := newWorld(0.5)
	e := New(w, core.EnemyTeleporter, 700, 100)
	tp := e.Behavior.(*Teleporter)

	tp.Move(e, w)
	if !tp.Teleporting || tp.Cooldown != TeleportCooldown {
		t.Fatalf("teleporter = %+v", tp)
	}
	tp.Move(e, w)
	if tp.Teleporting {
		t.Error("still teleporting after the jump")
	}
	if e.X != 480 || e.Y != 287.5 {
		t.Errorf("landed at (%v, %v), want (480, 287.5)", e.X, e.Y)
	}
}

func TestHealer_HealsNearbyAlliesUpToMax(t *testing.T) {
	w := newWorld()
	healer := New(w, core.EnemyHealer, 100, 100)
	hurt := New(w, core.EnemyArmored, 150, 100)
	hurt.Health = 1
	full := New(w, core.EnemyNormal, 100, 150)
	far := New(w, core.EnemyArmored, 200, 100) // exactly HealRadius away
	far.Health = 1
	dead := New(w, core.EnemyArmored, 110, 100)
	dead.Health = 0
	other := New(w, core.EnemyHealer, 120, 100)
	other.Health = 1
	w.Enemies = []*core.Enemy{healer, hurt, full, far, dead, other}

	healer.Behavior.Move(healer, w)

	if hurt.Health != 2 {
		t.Errorf("hurt ally health = %d, want 2", hurt.Health)
	}
	if full.Health != MaxHealth(core.EnemyNormal) {
		t.Errorf("full ally overhealed to %d", full.Health)
	}
	if far.Health != 1 {
		t.Error("healed an ally at the edge of the radius")
	}
	if dead.Health != 0 {
		t.Error("revived a dead ally")
	}
	if other.Health != 1 {
		t.Error("healed another healer")
	}
	if len(w.Particles) != 2*healSparks {
		t.Errorf("particles = %d, want %d", len(w.Particles), 2*healSparks)
	}

	hurt.Health = 1
	healer.Behavior.Move(healer, w)
	if hurt.Health != 1 {
		t.Error("healed again before the interval")
	}
}

func TestMegaboss_PhasesByHealth(t *testing.T) {
	cases := []struct {
		health  int
		phase   int
		bullets int
		kind    core.BulletKind
	}{
		{10, 1, 5, core.BulletMegaboss},
		{8, 1, 5, core.BulletMegaboss},
		{7, 2, 8, core.BulletMegaboss},
		{5, 2, 8, core.BulletMegaboss},
		{4, 3, 1, core.BulletMegalaser},
		{1, 3, 1, core.BulletMegalaser},
	}
	for _, tc := range cases {
		w := newWorld()
		e := New(w, core.EnemyMegaboss, 600, 200)
		e.Health = tc.health
		m := e.Behavior.(*Megaboss)
		m.Move(e, w)
		if m.Phase != tc.phase {
			t.Errorf("health %d: phase = %d, want %d", tc.health, m.Phase, tc.phase)
			continue
		}
		m.Fire(e, w)
		if len(w.EnemyBullets) != tc.bullets {
			t.Errorf("health %d: bullets = %d, want %d", tc.health, len(w.EnemyBullets), tc.bullets)
			continue
		}
		if w.EnemyBullets[0].Kind != tc.kind {
			t.Errorf("health %d: kind = %v, want %v", tc.health, w.EnemyBullets[0].Kind, tc.kind)
		}
	}
}

func TestOffField(t *testing.T) {
	w := newWorld()
	cases := []struct {
		x, y float64
		want bool
	}{
		{-39, 100, false},
		{-41, 100, true},
		{100, -51, true},
		{100, 651, true},
		{900, 300, false},
	}
	for _, tc := range cases {
		e := &core.Enemy{X: tc.x, Y: tc.y, W: 40, H: 30}
		if got := OffField(w, e); got != tc.want {
			t.Errorf("OffField(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestReload_SubCooldownGatesFire(t *testing.T) {
	tests := []struct {
		kind core.EnemyKind
		want []int
	}{
		{core.EnemyMissile, []int{1, 201, 401, 601}},
		{core.EnemyMiner, []int{1, 301, 601}},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			w := newWorld()
			e := New(w, tt.kind, 400, 300)
			var fired []int
			for tick := 1; tick <= 800; tick++ {
				e.X = 400
				before := len(w.EnemyBullets)
				Update(w, e)
				if len(w.EnemyBullets) > before {
					fired = append(fired, tick)
				}
				if r := reloadOf(e); r < 0 {
					t.Fatalf("tick %d: reload = %d, want >= 0", tick, r)
				}
			}
			if len(fired) != len(tt.want) {
				t.Fatalf("fired on %v, want %v", fired, tt.want)
			}
			for i := range tt.want {
				if fired[i] != tt.want[i] {
					t.Fatalf("fired on %v, want %v", fired, tt.want)
				}
			}
		})
	}
}

func reloadOf(e *core.Enemy) int {
	switch b := e.Behavior.(type) {
	case *Missile:
		return b.Reload
	case *Miner:
		return b.Reload
	}
	return 0
}

func TestDrone_PicksNewTargetWhenClose(t *testing.T) {
	w := newWorld(0.9, 0.5, 0.25)
	e := New(w, core.EnemyDrone, 400, 298)
	d := e.Behavior.(*Drone)
	if d.TargetY != 300 || math.Abs(d.VerticalSpeed-0.8) > 1e-9 {
		t.Fatalf("drone = %+v", d)
	}

	d.Move(e, w)
	if d.TargetY != 150 {
		t.Fatalf("target = %v, want 150 redrawn within %d px", d.TargetY, DroneSlack)
	}
	if e.Y != 298 {
		t.Errorf("y = %v, drone should not step while retargeting", e.Y)
	}

	d.Move(e, w)
	if math.Abs(e.Y-297.2) > 1e-9 {
		t.Errorf("y = %v, want 297.2 heading for the new target", e.Y)
	}
}

func TestDrone_FiresHomingBolt(t *testing.T) {
	w := newWorld()
	e := New(w, core.EnemyDrone, 400, 300)
	e.Behavior.Fire(e, w)
	if len(w.EnemyBullets) != 1 {
		t.Fatalf("bullets = %d, want 1", len(w.EnemyBullets))
	}
	b := w.EnemyBullets[0]
	if b.Kind != core.BulletHoming || b.X != e.X || b.Y != e.Y+e.H/2 {
		t.Errorf("bullet = %+v", *b)
	}
	if _, ok := b.Behavior.(*projectile.Homing); !ok {
		t.Errorf("behavior = %T, want *projectile.Homing", b.Behavior)
	}
}

func TestFast_ZigzagPhase(t *testing.T) {
	w := newWorld()
	e := New(w, core.EnemyFast, 400, 300)
	f := e.Behavior.(*Fast)
	for i := 0; i < 3; i++ {
		f.Move(e, w)
	}
	if math.Abs(f.ZigzagTime-0.3) > 1e-9 {
		t.Errorf("phase = %v, want 0.3", f.ZigzagTime)
	}
	want := 300 + ZigzagAmplitude*(math.Sin(0.1)+math.Sin(0.2)+math.Sin(0.3))
	if math.Abs(e.Y-want) > 1e-9 {
		t.Errorf("y = %v, want %v", e.Y, want)
	}
}

func TestGunship_ArmoredNarrowSpread(t *testing.T) {
	w := newWorld()
	e := New(w, core.EnemyArmored, 500, 200)
	e.Behavior.Fire(e, w)
	if len(w.EnemyBullets) != 3 {
		t.Fatalf("bullets = %d, want 3", len(w.EnemyBullets))
	}
	p := w.Players[0]
	base := core.AngleTo(e.X, e.Y, p.X, p.Y)
	for i, b := range w.EnemyBullets {
		if b.Kind != core.BulletSpread {
			t.Errorf("kind = %v, want spread", b.Kind)
		}
		want := base + float64(i-1)*0.2
		got := math.Atan2(b.VY, b.VX)
		if d := math.Remainder(got-want, 2*math.Pi); math.Abs(d) > 1e-9 {
			t.Errorf("bullet %d heading = %v, want %v", i, got, want)
		}
	}
}
