package systems

import (
	"github.com/1siamBot/shooter-engine/engine/collision"
	"github.com/1siamBot/shooter-engine/engine/core"
	"github.com/1siamBot/shooter-engine/engine/spawn"
)

// SpawnSystem tops up the enemy population
type SpawnSystem struct {
	Controller *spawn.Controller
}

func (s *SpawnSystem) Priority() int { return PrioritySpawn }

func (s *SpawnSystem) Update(w *core.World) {
	if s.Controller == nil {
		s.Controller = spawn.NewController()
	}
	fresh := s.Controller.MaybeSpawn(w, w.Frame, w.Level, w.OnScreenCount())
	w.Enemies = append(w.Enemies, fresh...)
}

// CollisionSystem resolves all contacts after every position is final
type CollisionSystem struct{}

func (s *CollisionSystem) Priority() int { return PriorityCollision }

func (s *CollisionSystem) Update(w *core.World) {
	collision.Resolve(w)
}
