package enemy

import (
	"github.com/1siamBot/shooter-engine/engine/core"
	"github.com/1siamBot/shooter-engine/engine/projectile"
)

const (
	// Vertical slack before an enemy counts as gone.
	OffFieldMargin = 50

	miniOffset = 20
)

// New builds an enemy of kind k with its top-left corner at (x,y) and
// speed scaled to the world's current level.
func New(w *core.World, k core.EnemyKind, x, y float64) *core.Enemy {
	return NewAtLevel(w, k, w.Level, x, y)
}

// NewAtLevel is New with an explicit level.
func NewAtLevel(w *core.World, k core.EnemyKind, level int, x, y float64) *core.Enemy {
	if k >= core.NumEnemyKinds {
		w.Unknown("enemy", int(k))
		k = core.EnemyNormal
	}
	p := profiles[k]
	e := &core.Enemy{
		X:             x,
		Y:             y,
		W:             p.W,
		H:             p.H,
		Health:        p.Health,
		MaxHealth:     p.Health,
		Speed:         p.Speed + float64(level)*p.SpeedPerLevel,
		Kind:          k,
		ShootCooldown: p.FirstShot,
	}
	e.Behavior = behaviors[k](w)
	return e
}

// Update runs one tick for e: movement, spin and the shoot cooldown.
func Update(w *core.World, e *core.Enemy) {
	beh := e.Behavior
	if beh == nil {
		beh = fallback(w, e.Kind)
		e.Behavior = beh
	}
	p := ProfileOf(e.Kind)

	beh.Move(e, w)
	e.Rotation += p.Spin

	e.ShootCooldown--
	if e.ShootCooldown <= 0 {
		beh.Fire(e, w)
		e.ShootCooldown = p.Cooldown
	}
}

// OffField reports whether e has left the playfield for good.
func OffField(w *core.World, e *core.Enemy) bool {
	return e.X+e.W < 0 || e.Y < -OffFieldMargin || e.Y > w.Height+OffFieldMargin
}

// deathHook is implemented by behaviors with a side effect on destruction.
type deathHook interface {
	OnDeath(e *core.Enemy, w *core.World)
}

// Destroy applies everything that happens when e is killed: explosion,
// score, kind-specific death effects and a possible powerup drop.
func Destroy(w *core.World, e *core.Enemy) {
	cx, cy := e.Bounds().Center()
	w.Explode(cx, cy)
	w.PlaySound(core.SndExplosion)

	score := Score(e.Kind)
	w.Score += score
	w.Emit(core.EvtEnemyKilled, core.Kill{Kind: e.Kind, X: cx, Y: cy, Score: score})

	if h, ok := e.Behavior.(deathHook); ok {
		h.OnDeath(e, w)
	}

	if w.RNG.Float64() < core.PowerupChance {
		w.Powerups = append(w.Powerups, &core.Powerup{
			X:    e.X,
			Y:    e.Y + e.H/2,
			Kind: core.PowerupHealth,
			Life: core.PowerupLife,
		})
	}
}

func fallback(w *core.World, k core.EnemyKind) core.EnemyBehavior {
	if k >= core.NumEnemyKinds {
		w.Unknown("enemy", int(k))
		return &Gunship{Shot: projectile.NormalShot}
	}
	return behaviors[k](w)
}
