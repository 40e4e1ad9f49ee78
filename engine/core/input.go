package core

// Action is a logical input the simulation reacts to.
type Action uint8

const (
	ActP1Up Action = iota
	ActP1Down
	ActP1Left
	ActP1Right
	ActP1Fire
	ActP2Up
	ActP2Down
	ActP2Left
	ActP2Right
	ActP2Fire
	ActStart         // begin from the title screen, restart after game over
	ActPause         // toggle pause
	ActTogglePlayer2 // add or remove the second local player
	ActToggleMusic
	ActMax
)

var actionNames = [ActMax]string{
	"p1_up", "p1_down", "p1_left", "p1_right", "p1_fire",
	"p2_up", "p2_down", "p2_left", "p2_right", "p2_fire",
	"start", "pause", "toggle_player2", "toggle_music",
}

func (a Action) String() string {
	if a < ActMax {
		return actionNames[a]
	}
	return "unknown"
}

// ParseAction resolves a binding name back to its action.
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

// ActionSet is a bitmask of pressed actions.
type ActionSet uint32

func (s ActionSet) Has(a Action) bool { return s&(1<<a) != 0 }

func (s *ActionSet) Set(a Action) { *s |= 1 << a }

// Snapshot is the frozen input for one tick. Toggle actions (start, pause,
// player 2, music) are expected to be edge-triggered by the producer.
type Snapshot struct {
	Actions  ActionSet
	PointerX float64
	PointerY float64
	// NoPointer is set by front-ends without a pointer; each player then
	// fires straight ahead along its own row.
	NoPointer bool
}

// Pressed reports whether a is held in this snapshot.
func (s Snapshot) Pressed(a Action) bool {
	return s.Actions.Has(a)
}

// Press returns a copy of the snapshot with the given actions held.
func (s Snapshot) Press(actions ...Action) Snapshot {
	for _, a := range actions {
		s.Actions.Set(a)
	}
	return s
}
