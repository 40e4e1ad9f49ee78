package projectile

import (
	"math"

	"github.com/1siamBot/shooter-engine/engine/core"
)

// Shot describes one enemy bolt: what it is and how it flies.
type Shot struct {
	Kind  core.BulletKind
	Speed float64
	Size  float64
	Life  int
}

var (
	NormalShot    = Shot{core.BulletNormal, 3, 4, 150}
	BossShot      = Shot{core.BulletBoss, 4, 6, 180}
	FastShot      = Shot{core.BulletFast, 5, 3, 120}
	HomingShot    = Shot{core.BulletHoming, 2.5, 4, 200}
	SniperShot    = Shot{core.BulletSniper, 6, 8, 180}
	SpreadShot    = Shot{core.BulletSpread, 3, 4, 150}
	StealthShot   = Shot{core.BulletStealth, 4, 3, 140}
	MissileShot   = Shot{core.BulletMissile, 2, 6, 300}
	PiercingShot  = Shot{core.BulletPiercing, 3.5, 5, 160}
	SplitShot     = Shot{core.BulletSplit, 3, 4, 100}
	LaserShot     = Shot{core.BulletLaser, 8, 12, 80}
	ElectricShot  = Shot{core.BulletElectric, 4, 3, 120}
	MineShot      = Shot{core.BulletMine, 0, 8, 600}
	TeleportShot  = Shot{core.BulletTeleport, 6, 4, 100}
	HealShot      = Shot{core.BulletHeal, 2, 5, 200}
	MegabossShot  = Shot{core.BulletMegaboss, 4, 7, 200}
	RingShot      = Shot{core.BulletMegaboss, 3, 6, 180}
	MegalaserShot = Shot{core.BulletMegalaser, 10, 20, 60}
	MiniShot      = Shot{core.BulletMini, 4, 2, 100}
	SplinterShot  = Shot{core.BulletMini, 2.5, 3, 80}
)

// Launch appends a bullet heading along angle and returns it.
func Launch(w *core.World, s Shot, x, y, angle float64) *core.EnemyBullet {
	b := &core.EnemyBullet{
		X:    x,
		Y:    y,
		VX:   math.Cos(angle) * s.Speed,
		VY:   math.Sin(angle) * s.Speed,
		Size: s.Size,
		Life: s.Life,
		Kind: s.Kind,
	}
	b.Behavior = NewBehavior(w, s.Kind)
	w.EnemyBullets = append(w.EnemyBullets, b)
	return b
}

// Advance runs one tick for an enemy bullet and reports whether it survives.
func Advance(w *core.World, b *core.EnemyBullet) bool {
	beh := b.Behavior
	if beh == nil {
		beh = Ballistic{}
	}
	if !beh.Step(b, w) {
		return false
	}
	b.X += b.VX
	b.Y += b.VY
	b.Life--
	return b.Life > 0 && b.X >= 0 && b.Y >= 0 && b.Y <= w.Height
}
