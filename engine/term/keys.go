package term

import (
	"unicode"

	"github.com/1siamBot/shooter-engine/engine/core"
	"github.com/gdamore/tcell/v2"
)

// HoldTicks is how long a key counts as held after its last press.
// Terminals report key repeats, never releases.
const HoldTicks = 8

var runeActions = map[rune][]core.Action{
	'w': {core.ActP1Up},
	'a': {core.ActP1Left},
	's': {core.ActP1Down},
	'd': {core.ActP1Right},
	' ': {core.ActP1Fire, core.ActStart},
	'i': {core.ActP2Up},
	'j': {core.ActP2Left},
	'k': {core.ActP2Down},
	'l': {core.ActP2Right},
	'p': {core.ActTogglePlayer2},
	'm': {core.ActToggleMusic},
}

var keyActions = map[tcell.Key][]core.Action{
	tcell.KeyUp:     {core.ActP1Up},
	tcell.KeyDown:   {core.ActP1Down},
	tcell.KeyLeft:   {core.ActP1Left},
	tcell.KeyRight:  {core.ActP1Right},
	tcell.KeyEnter:  {core.ActP2Fire},
	tcell.KeyEscape: {core.ActPause},
}

// edge actions fire for a single tick per key event
var edge = map[core.Action]bool{
	core.ActStart:         true,
	core.ActPause:         true,
	core.ActTogglePlayer2: true,
	core.ActToggleMusic:   true,
}

// Keys turns terminal key events into per-tick input snapshots
type Keys struct {
	Hold int
	held [core.ActMax]int
}

func NewKeys() *Keys {
	return &Keys{Hold: HoldTicks}
}

// Handle records a key event. It reports whether the player asked to quit.
func (k *Keys) Handle(ev *tcell.EventKey) (quit bool) {
	var actions []core.Action
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		r := unicode.ToLower(ev.Rune())
		if r == 'q' {
			return true
		}
		actions = runeActions[r]
	default:
		actions = keyActions[ev.Key()]
	}
	for _, a := range actions {
		if edge[a] {
			k.held[a] = 1
		} else {
			k.held[a] = k.Hold
		}
	}
	return false
}

// Snapshot returns the actions held this tick and ages every hold by one
func (k *Keys) Snapshot() core.Snapshot {
	var s core.Snapshot
	for a := core.Action(0); a < core.ActMax; a++ {
		if k.held[a] > 0 {
			s.Actions.Set(a)
			k.held[a]--
		}
	}
	return s
}
