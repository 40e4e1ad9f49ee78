package projectile

import (
	"math"

	"github.com/1siamBot/shooter-engine/engine/core"
)

// Player bullet tuning.
const (
	PlayerBulletSpeed = 8
	PlayerBulletSize  = 4
	PlayerBulletLife  = 120
	muzzleParticles   = 5
)

// FirePlayer launches a bullet from p's muzzle toward the aim point.
func FirePlayer(w *core.World, p *core.Player, aimX, aimY float64) *core.Bullet {
	x, y := p.Muzzle()
	angle := core.AngleTo(x, y, aimX, aimY)
	b := &core.Bullet{
		X:     x,
		Y:     y,
		VX:    math.Cos(angle) * PlayerBulletSpeed,
		VY:    math.Sin(angle) * PlayerBulletSpeed,
		Size:  PlayerBulletSize,
		Life:  PlayerBulletLife,
		Owner: p.Slot,
	}
	w.Bullets = append(w.Bullets, b)
	w.Burst(x, y, muzzleParticles, core.MuzzleColor(p.Slot))
	w.PlaySound(core.SndShot)
	return b
}

// AdvancePlayer moves a player bullet one tick and reports whether it
// is still alive and inside the playfield.
func AdvancePlayer(w *core.World, b *core.Bullet) bool {
	b.Trail = append(b.Trail, core.Point{X: b.X, Y: b.Y})
	if len(b.Trail) > core.TrailLength {
		b.Trail = b.Trail[1:]
	}
	b.X += b.VX
	b.Y += b.VY
	b.Life--
	return b.Life > 0 && b.X >= 0 && b.X <= w.Width && b.Y >= 0 && b.Y <= w.Height
}
