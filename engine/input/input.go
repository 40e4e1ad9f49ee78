package input

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/1siamBot/shooter-engine/engine/core"
)

// Bindings maps each action to the keys that trigger it
type Bindings map[core.Action][]ebiten.Key

// DefaultBindings: arrows/WASD + Space for player 1, IJKL + Enter for player 2
func DefaultBindings() Bindings {
	return Bindings{
		core.ActP1Up:          {ebiten.KeyArrowUp, ebiten.KeyW},
		core.ActP1Down:        {ebiten.KeyArrowDown, ebiten.KeyS},
		core.ActP1Left:        {ebiten.KeyArrowLeft, ebiten.KeyA},
		core.ActP1Right:       {ebiten.KeyArrowRight, ebiten.KeyD},
		core.ActP1Fire:        {ebiten.KeySpace},
		core.ActP2Up:          {ebiten.KeyI},
		core.ActP2Down:        {ebiten.KeyK},
		core.ActP2Left:        {ebiten.KeyJ},
		core.ActP2Right:       {ebiten.KeyL},
		core.ActP2Fire:        {ebiten.KeyEnter},
		core.ActStart:         {ebiten.KeySpace},
		core.ActPause:         {ebiten.KeyEscape},
		core.ActTogglePlayer2: {ebiten.KeyP},
		core.ActToggleMusic:   {ebiten.KeyM},
	}
}

// ParseBindings overrides defaults with named keys, e.g. {"p1_fire": ["Space", "Z"]}
func ParseBindings(names map[string][]string) (Bindings, error) {
	b := DefaultBindings()
	for actionName, keyNames := range names {
		action, ok := core.ParseAction(actionName)
		if !ok {
			return nil, fmt.Errorf("input: unknown action %q", actionName)
		}
		keys := make([]ebiten.Key, 0, len(keyNames))
		for _, n := range keyNames {
			k, ok := KeyByName(n)
			if !ok {
				return nil, fmt.Errorf("input: unknown key %q for %s", n, actionName)
			}
			keys = append(keys, k)
		}
		b[action] = keys
	}
	return b, nil
}

// KeyByName resolves an ebiten key name, ignoring case
func KeyByName(name string) (ebiten.Key, bool) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return 0, false
}

// edgeTriggered actions fire once per key press rather than while held
func edgeTriggered(a core.Action) bool {
	switch a {
	case core.ActStart, core.ActPause, core.ActTogglePlayer2, core.ActToggleMusic:
		return true
	}
	return false
}

// InputState turns device state into one frozen snapshot per frame
type InputState struct {
	Bindings       Bindings
	MouseX, MouseY int
	Last           core.Snapshot
}

func NewInputState(b Bindings) *InputState {
	if b == nil {
		b = DefaultBindings()
	}
	return &InputState{Bindings: b}
}

// Update should be called every frame
func (s *InputState) Update() core.Snapshot {
	s.MouseX, s.MouseY = ebiten.CursorPosition()

	snap := core.Snapshot{
		PointerX: float64(s.MouseX),
		PointerY: float64(s.MouseY),
	}
	for action, keys := range s.Bindings {
		for _, k := range keys {
			var down bool
			if edgeTriggered(action) {
				down = inpututil.IsKeyJustPressed(k)
			} else {
				down = ebiten.IsKeyPressed(k)
			}
			if down {
				snap.Actions.Set(action)
				break
			}
		}
	}
	s.Last = snap
	return snap
}
