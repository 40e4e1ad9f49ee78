package systems

import (
	"github.com/1siamBot/shooter-engine/engine/background"
	"github.com/1siamBot/shooter-engine/engine/core"
)

// BackgroundSystem scrolls the backdrop. It runs in every game state.
type BackgroundSystem struct {
	Field *background.Field
}

func (s *BackgroundSystem) Priority() int { return PriorityBackground }

func (s *BackgroundSystem) Ambient() bool { return true }

func (s *BackgroundSystem) Update(w *core.World) {
	if s.Field != nil {
		s.Field.Update()
	}
}
