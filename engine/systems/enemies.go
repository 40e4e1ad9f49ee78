package systems

import (
	"github.com/1siamBot/shooter-engine/engine/core"
	"github.com/1siamBot/shooter-engine/engine/enemy"
)

// EnemySystem moves and fires every enemy, then removes the ones that
// left the field or died. Leaving the field is checked first and is
// silent; death explodes and scores. Enemies spawned during the pass
// (splitter minis) start moving next tick.
type EnemySystem struct{}

func (s *EnemySystem) Priority() int { return PriorityEnemies }

func (s *EnemySystem) Update(w *core.World) {
	current := w.Enemies
	n := len(current)
	kept := make([]*core.Enemy, 0, n)
	for _, e := range current[:n] {
		enemy.Update(w, e)
		if enemy.OffField(w, e) {
			continue
		}
		if !e.Alive() {
			enemy.Destroy(w, e)
			continue
		}
		kept = append(kept, e)
	}
	w.Enemies = append(kept, w.Enemies[n:]...)
}
