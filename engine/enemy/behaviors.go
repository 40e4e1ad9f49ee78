package enemy

import (
	"math"

	"github.com/1siamBot/shooter-engine/engine/core"
	"github.com/1siamBot/shooter-engine/engine/projectile"
)

// Behavior tuning shared by the kinds below.
const (
	ZigzagStep      = 0.1
	ZigzagAmplitude = 2

	DroneSlack = 5

	SniperCharge = 120

	StealthCycle   = 120
	StealthVisible = 60

	MissileReload = 180

	SplitterWave      = 0.05
	SplitterAmplitude = 1.5

	LaserHoldLine = 0.7 // fraction of the playfield width
	LaserCharge   = 60

	ElectricJitter = 3
	ElectricCharge = 60

	MinerReload = 240

	TeleportCooldown = 180
	TeleportMinX     = 0.2 // fraction of the playfield width

	HealInterval = 300
	HealRadius   = 100
	healSparks   = 5
)

// behaviors maps each kind to the constructor of its state. Every kind
// has an entry.
var behaviors = [core.NumEnemyKinds]func(w *core.World) core.EnemyBehavior{
	core.EnemyNormal:  func(*core.World) core.EnemyBehavior { return &Gunship{Shot: projectile.NormalShot} },
	core.EnemyLarge:   func(*core.World) core.EnemyBehavior { return &Gunship{Shot: projectile.NormalShot} },
	core.EnemyMini:    func(*core.World) core.EnemyBehavior { return &Gunship{Shot: projectile.MiniShot} },
	core.EnemyShield:  func(*core.World) core.EnemyBehavior { return &Gunship{Shot: projectile.PiercingShot} },
	core.EnemyBoss:    func(*core.World) core.EnemyBehavior { return &Gunship{Shot: projectile.BossShot, Guns: 3, Spread: 0.3} },
	core.EnemyArmored: func(*core.World) core.EnemyBehavior { return &Gunship{Shot: projectile.SpreadShot, Guns: 3, Spread: 0.2} },
	core.EnemyFast:    func(*core.World) core.EnemyBehavior { return &Fast{ZigzagDir: 1} },
	core.EnemyDrone: func(w *core.World) core.EnemyBehavior {
		return &Drone{
			VerticalSpeed: (w.RNG.Float64() - 0.5) * 2,
			TargetY:       w.RNG.Float64() * w.Height,
		}
	},
	core.EnemySniper:     func(*core.World) core.EnemyBehavior { return &Sniper{} },
	core.EnemyStealth:    func(*core.World) core.EnemyBehavior { return &Stealth{Visible: true} },
	core.EnemyMissile:    func(*core.World) core.EnemyBehavior { return &Missile{} },
	core.EnemySplitter:   func(*core.World) core.EnemyBehavior { return &Splitter{} },
	core.EnemyLaser:      func(*core.World) core.EnemyBehavior { return &Laser{} },
	core.EnemyElectric:   func(*core.World) core.EnemyBehavior { return &Electric{} },
	core.EnemyMiner:      func(*core.World) core.EnemyBehavior { return &Miner{} },
	core.EnemyTeleporter: func(*core.World) core.EnemyBehavior { return &Teleporter{} },
	core.EnemyHealer:     func(*core.World) core.EnemyBehavior { return &Healer{} },
	core.EnemyMegaboss:   func(*core.World) core.EnemyBehavior { return &Megaboss{Phase: 1} },
}

func drift(e *core.Enemy) {
	e.X -= e.Speed
}

// aim returns the muzzle of e and the heading from its corner to player 1.
func aim(e *core.Enemy, w *core.World) (x, y, angle float64) {
	p := w.Players[0]
	return e.X, e.Y + e.H/2, core.AngleTo(e.X, e.Y, p.X, p.Y)
}

// fan launches one bullet per offset around the aimed heading.
func fan(w *core.World, e *core.Enemy, shot projectile.Shot, offsets ...float64) {
	x, y, angle := aim(e, w)
	for _, off := range offsets {
		projectile.Launch(w, shot, x, y, angle+off)
	}
}

// Gunship drifts left and fires Guns bolts spaced Spread radians apart.
// Normal, large, mini, shield, boss and armored enemies are gunships.
type Gunship struct {
	Shot   projectile.Shot
	Guns   int
	Spread float64
}

func (g *Gunship) Move(e *core.Enemy, _ *core.World) { drift(e) }

func (g *Gunship) Fire(e *core.Enemy, w *core.World) {
	guns := g.Guns
	if guns < 1 {
		guns = 1
	}
	offsets := make([]float64, 0, guns)
	for i := -(guns / 2); i <= guns/2; i++ {
		offsets = append(offsets, float64(i)*g.Spread)
	}
	fan(w, e, g.Shot, offsets...)
}

// Fast zigzags vertically while drifting.
type Fast struct {
	ZigzagTime float64
	ZigzagDir  float64
}

func (f *Fast) Move(e *core.Enemy, _ *core.World) {
	drift(e)
	f.ZigzagTime += ZigzagStep
	e.Y += math.Sin(f.ZigzagTime) * f.ZigzagDir * ZigzagAmplitude
}

func (f *Fast) Fire(e *core.Enemy, w *core.World) { fan(w, e, projectile.FastShot, 0) }

// Drone steers vertically toward TargetY and picks a new target once close.
type Drone struct {
	VerticalSpeed float64
	TargetY       float64
}

func (d *Drone) Move(e *core.Enemy, w *core.World) {
	drift(e)
	dy := d.TargetY - e.Y
	if math.Abs(dy) > DroneSlack {
		e.Y += sign(dy) * math.Abs(d.VerticalSpeed)
	} else {
		d.TargetY = w.RNG.Float64() * w.Height
	}
}

func (d *Drone) Fire(e *core.Enemy, w *core.World) {
	fan(w, e, projectile.HomingShot, 0)
}

// Sniper builds up charge and only shoots once it exceeds SniperCharge.
type Sniper struct {
	Charge int
}

func (s *Sniper) Move(e *core.Enemy, _ *core.World) {
	drift(e)
	s.Charge++
}

func (s *Sniper) Fire(e *core.Enemy, w *core.World) {
	if s.Charge <= SniperCharge {
		return
	}
	fan(w, e, projectile.SniperShot, 0)
	s.Charge = 0
}

// Stealth fades in and out on a fixed cycle and holds fire while hidden.
type Stealth struct {
	Cycle   int
	Visible bool
}

func (s *Stealth) Move(e *core.Enemy, _ *core.World) {
	drift(e)
	s.Cycle++
	s.Visible = s.Cycle%StealthCycle < StealthVisible
}

func (s *Stealth) Fire(e *core.Enemy, w *core.World) {
	if !s.Visible {
		return
	}
	fan(w, e, projectile.StealthShot, 0)
}

// Missile launches homing missiles on its own reload timer.
type Missile struct {
	Reload int
}

func (m *Missile) Move(e *core.Enemy, _ *core.World) {
	drift(e)
	if m.Reload > 0 {
		m.Reload--
	}
}

func (m *Missile) Fire(e *core.Enemy, w *core.World) {
	if m.Reload > 0 {
		return
	}
	fan(w, e, projectile.MissileShot, 0)
	m.Reload = MissileReload
}

// Splitter waves on the global frame counter and breaks into two minis
// when destroyed.
type Splitter struct{}

func (Splitter) Move(e *core.Enemy, w *core.World) {
	drift(e)
	e.Y += math.Sin(float64(w.Frame)*SplitterWave) * SplitterAmplitude
}

func (Splitter) Fire(e *core.Enemy, w *core.World) { fan(w, e, projectile.SplitShot, 0) }

func (Splitter) OnDeath(e *core.Enemy, w *core.World) {
	for i := 0; i < 2; i++ {
		off := (float64(i) - 0.5) * miniOffset
		w.Enemies = append(w.Enemies, New(w, core.EnemyMini, e.X+off, e.Y+off))
	}
}

// Laser stops at the hold line and charges before each shot.
type Laser struct {
	Charge   int
	Charging bool
}

func (l *Laser) Move(e *core.Enemy, w *core.World) {
	if e.X > w.Width*LaserHoldLine {
		drift(e)
		return
	}
	l.Charge++
	if l.Charge > LaserCharge {
		l.Charging = true
	}
}

func (l *Laser) Fire(e *core.Enemy, w *core.World) {
	if !l.Charging {
		return
	}
	fan(w, e, projectile.LaserShot, 0)
	l.Charging = false
	l.Charge = 0
}

// Electric jitters vertically and releases a five-way burst once charged.
type Electric struct {
	Charge int
}

func (el *Electric) Move(e *core.Enemy, w *core.World) {
	drift(e)
	e.Y += (w.RNG.Float64() - 0.5) * ElectricJitter
	el.Charge++
}

func (el *Electric) Fire(e *core.Enemy, w *core.World) {
	if el.Charge <= ElectricCharge {
		return
	}
	fan(w, e, projectile.ElectricShot, -0.5, -0.25, 0, 0.25, 0.5)
	el.Charge = 0
}

// Miner drops stationary mines on its own reload timer.
type Miner struct {
	Reload int
}

func (m *Miner) Move(e *core.Enemy, _ *core.World) {
	drift(e)
	if m.Reload > 0 {
		m.Reload--
	}
}

func (m *Miner) Fire(e *core.Enemy, w *core.World) {
	if m.Reload > 0 {
		return
	}
	fan(w, e, projectile.MineShot, 0)
	m.Reload = MinerReload
}

// Teleporter drifts until its cooldown expires, then spends one tick
// jumping to a random spot in the right part of the playfield.
type Teleporter struct {
	Cooldown    int
	Teleporting bool
}

func (t *Teleporter) Move(e *core.Enemy, w *core.World) {
	if t.Teleporting {
		e.X = w.RNG.Float64()*(w.Width*(1-TeleportMinX)) + w.Width*TeleportMinX
		e.Y = w.RNG.Float64() * (w.Height - e.H)
		t.Teleporting = false
		return
	}
	drift(e)
	t.Cooldown--
	if t.Cooldown <= 0 {
		t.Teleporting = true
		t.Cooldown = TeleportCooldown
	}
}

func (t *Teleporter) Fire(e *core.Enemy, w *core.World) { fan(w, e, projectile.TeleportShot, 0) }

// Healer periodically restores one health to nearby allies.
type Healer struct {
	Cooldown int
}

func (h *Healer) Move(e *core.Enemy, w *core.World) {
	drift(e)
	h.Cooldown--
	if h.Cooldown > 0 {
		return
	}
	for _, o := range w.Enemies {
		if o == e || o.Kind == core.EnemyHealer || !o.Alive() {
			continue
		}
		if core.Distance(e.X, e.Y, o.X, o.Y) >= HealRadius {
			continue
		}
		if o.Health < MaxHealth(o.Kind) {
			o.Health++
		}
		cx, cy := o.Bounds().Center()
		w.Burst(cx, cy, healSparks, core.ColorHeal)
	}
	h.Cooldown = HealInterval
}

func (h *Healer) Fire(e *core.Enemy, w *core.World) { fan(w, e, projectile.HealShot, 0) }

// Megaboss changes phase as it loses health. The phase sets both its
// vertical sway and its attack.
type Megaboss struct {
	Phase int
}

var megabossSway = [4]struct{ freq, amp float64 }{
	1: {0.02, 0.5},
	2: {0.04, 1},
	3: {0.06, 1.5},
}

func (m *Megaboss) Move(e *core.Enemy, w *core.World) {
	drift(e)
	switch {
	case e.Health > 7:
		m.Phase = 1
	case e.Health > 4:
		m.Phase = 2
	default:
		m.Phase = 3
	}
	s := megabossSway[m.Phase]
	e.Y += math.Sin(float64(w.Frame)*s.freq) * s.amp
}

func (m *Megaboss) Fire(e *core.Enemy, w *core.World) {
	switch m.Phase {
	case 1:
		fan(w, e, projectile.MegabossShot, -0.4, -0.2, 0, 0.2, 0.4)
	case 2:
		cx, cy := e.Bounds().Center()
		for i := 0; i < 8; i++ {
			projectile.Launch(w, projectile.RingShot, cx, cy, float64(i)/8*2*math.Pi)
		}
	default:
		fan(w, e, projectile.MegalaserShot, 0)
	}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
