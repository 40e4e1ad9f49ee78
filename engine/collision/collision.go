// Package collision resolves contacts between the entity pools once all
// positions for the tick are final. Player boxes are always tested through
// their shrunk hitbox.
package collision

import (
	"github.com/1siamBot/shooter-engine/engine/core"
)

const (
	BulletDamage  = 5
	ContactDamage = 10

	hitSparks    = 8
	damageSparks = 10
	pickupSparks = 15
)

// Resolve runs every pass in order. Each pass finishes before the next
// starts, and anything removed in one pass is gone for the later ones.
func Resolve(w *core.World) {
	p1, p2 := w.Players[0], w.Players[1]

	PlayerBullets(w)

	EnemyBullets(w, p1)
	if p2.Playing() {
		EnemyBullets(w, p2)
	}

	Contact(w, p1)
	if p2.Playing() {
		Contact(w, p2)
	}

	Pickups(w, p1)
	if p2.Playing() {
		Pickups(w, p2)
	}
}

// PlayerBullets lets each player bullet hit at most one enemy.
func PlayerBullets(w *core.World) {
	for i := len(w.Bullets) - 1; i >= 0; i-- {
		b := w.Bullets[i]
		box := b.Bounds()
		for j := len(w.Enemies) - 1; j >= 0; j-- {
			e := w.Enemies[j]
			if !box.Overlaps(e.Bounds()) {
				continue
			}
			e.Health--
			w.Burst(b.X, b.Y, hitSparks, core.ColorEnemyHit)
			w.Emit(core.EvtEnemyHit, e)
			w.Bullets = removeAt(w.Bullets, i)
			break
		}
	}
}

// EnemyBullets damages p with every enemy bullet overlapping its hitbox.
func EnemyBullets(w *core.World, p *core.Player) {
	hitbox := p.Hitbox()
	for i := len(w.EnemyBullets) - 1; i >= 0; i-- {
		b := w.EnemyBullets[i]
		if !b.Bounds().Overlaps(hitbox) {
			continue
		}
		hurt(w, p, BulletDamage)
		w.Burst(b.X, b.Y, damageSparks, core.ColorPlayerHit)
		w.PlaySound(core.SndPlayerHit)
		w.EnemyBullets = removeAt(w.EnemyBullets, i)
	}
}

// Contact handles ramming. The enemy is left at zero health so the next
// enemy update removes it with its explosion and score.
func Contact(w *core.World, p *core.Player) {
	hitbox := p.Hitbox()
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := w.Enemies[i]
		if !hitbox.Overlaps(e.Bounds()) {
			continue
		}
		e.Health = 0
		hurt(w, p, ContactDamage)
	}
}

// Pickups collects every powerup touching p.
func Pickups(w *core.World, p *core.Player) {
	hitbox := p.Hitbox()
	for i := len(w.Powerups) - 1; i >= 0; i-- {
		pu := w.Powerups[i]
		if !hitbox.Overlaps(pu.Bounds()) {
			continue
		}
		if pu.Kind == core.PowerupHealth {
			p.Heal(core.PowerupHeal)
		}
		w.Burst(pu.X, pu.Y, pickupSparks, core.ColorHeal)
		w.Emit(core.EvtPowerupCollected, core.PlayerHit{Slot: p.Slot, Amount: -core.PowerupHeal, Health: p.Health})
		w.PlaySound(core.SndPowerup)
		w.After(core.ChimeDelay, core.EvtSound, core.SndPowerupChime)
		w.Powerups = removeAt(w.Powerups, i)
	}
}

// hurt damages p and ends the run when the loss is fatal. Player 2 going
// down only ends it if player 1 is already down.
func hurt(w *core.World, p *core.Player, amount int) {
	p.Damage(amount)
	w.Emit(core.EvtPlayerHit, core.PlayerHit{Slot: p.Slot, Amount: amount, Health: p.Health})
	if p.Alive() {
		return
	}
	if p.Slot == 0 || !w.Players[0].Alive() {
		w.GameOver()
	}
}

func removeAt[T any](s []T, i int) []T {
	return append(s[:i], s[i+1:]...)
}
