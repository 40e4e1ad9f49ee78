package systems

import (
	"github.com/1siamBot/shooter-engine/engine/core"
	"github.com/1siamBot/shooter-engine/engine/projectile"
)

// BulletSystem advances player bullets
type BulletSystem struct{}

func (s *BulletSystem) Priority() int { return PriorityBullets }

func (s *BulletSystem) Update(w *core.World) {
	kept := w.Bullets[:0]
	for _, b := range w.Bullets {
		if projectile.AdvancePlayer(w, b) {
			kept = append(kept, b)
		}
	}
	clear(w.Bullets[len(kept):])
	w.Bullets = kept
}

// EnemyBulletSystem advances enemy bullets. Splinters created this tick
// are kept but not moved until the next one.
type EnemyBulletSystem struct{}

func (s *EnemyBulletSystem) Priority() int { return PriorityEnemyBullets }

func (s *EnemyBulletSystem) Update(w *core.World) {
	current := w.EnemyBullets
	n := len(current)
	kept := make([]*core.EnemyBullet, 0, n)
	for _, b := range current[:n] {
		if projectile.Advance(w, b) {
			kept = append(kept, b)
		}
	}
	w.EnemyBullets = append(kept, w.EnemyBullets[n:]...)
}
