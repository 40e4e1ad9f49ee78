package projectile

import (
	"math"

	"github.com/1siamBot/shooter-engine/engine/core"
)

const (
	DefaultHomingStrength = 0.05
	HomingMaxSpeed        = 4
	MissileStrength       = 0.08
	MissileMaxSpeed       = 5
	// Homing stops steering once remaining life drops to this value.
	HomingCutoff = 50

	SplitTimer  = 50
	SplitSpread = 0.5

	MineArmTicks = 60
	MineRadius   = 50
)

// behaviors maps a bullet kind to the constructor of its per-tick logic.
// Kinds without an entry fly straight.
var behaviors = [core.NumBulletKinds]func() core.BulletBehavior{
	core.BulletHoming: func() core.BulletBehavior {
		return &Homing{Strength: DefaultHomingStrength, MaxSpeed: HomingMaxSpeed}
	},
	core.BulletMissile: func() core.BulletBehavior {
		return &Homing{Strength: MissileStrength, MaxSpeed: MissileMaxSpeed}
	},
	core.BulletSplit: func() core.BulletBehavior {
		return &Split{Timer: SplitTimer}
	},
	core.BulletMine: func() core.BulletBehavior {
		return &Mine{ArmTimer: MineArmTicks}
	},
}

// NewBehavior returns fresh per-bullet state for kind k.
func NewBehavior(w *core.World, k core.BulletKind) core.BulletBehavior {
	if k >= core.NumBulletKinds {
		w.Unknown("projectile", int(k))
		return Ballistic{}
	}
	if f := behaviors[k]; f != nil {
		return f()
	}
	return Ballistic{}
}

// Ballistic bullets only move.
type Ballistic struct{}

func (Ballistic) Step(*core.EnemyBullet, *core.World) bool { return true }

// Homing steers toward player 1 while it still has life to spare.
type Homing struct {
	Strength float64
	MaxSpeed float64
}

func (h *Homing) Step(b *core.EnemyBullet, w *core.World) bool {
	if b.Life <= HomingCutoff {
		return true
	}
	p := w.Players[0]
	dx := p.X - b.X
	dy := p.Y - b.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return true
	}
	b.VX += dx / dist * h.Strength
	b.VY += dy / dist * h.Strength
	if speed := math.Hypot(b.VX, b.VY); speed > h.MaxSpeed {
		b.VX = b.VX / speed * h.MaxSpeed
		b.VY = b.VY / speed * h.MaxSpeed
	}
	return true
}

// Split counts down and then breaks into three splinters fanned around
// its heading.
type Split struct {
	Timer int
}

func (s *Split) Step(b *core.EnemyBullet, w *core.World) bool {
	if s.Timer <= 0 {
		return true
	}
	s.Timer--
	if s.Timer > 0 {
		return true
	}
	heading := math.Atan2(b.VY, b.VX)
	for j := -1; j <= 1; j++ {
		Launch(w, SplinterShot, b.X, b.Y, heading+float64(j)*SplitSpread)
	}
	return false
}

// Mine sits still, arms after ArmTimer ticks, then detonates when
// player 1 comes within MineRadius.
type Mine struct {
	ArmTimer int
	Armed    bool
}

func (m *Mine) Step(b *core.EnemyBullet, w *core.World) bool {
	if !m.Armed {
		if m.ArmTimer > 0 {
			m.ArmTimer--
		}
		if m.ArmTimer <= 0 {
			m.Armed = true
		}
		return true
	}
	p := w.Players[0]
	if core.Distance(b.X, b.Y, p.X, p.Y) >= MineRadius {
		return true
	}
	w.Explode(b.X, b.Y)
	w.PlaySound(core.SndMineBlast)
	return false
}
