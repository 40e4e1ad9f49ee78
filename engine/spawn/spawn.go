// Package spawn keeps the playfield populated with enemies.
package spawn

import (
	"github.com/1siamBot/shooter-engine/engine/core"
	"github.com/1siamBot/shooter-engine/engine/enemy"
)

// band is one slice of the unit interval mapped to an enemy kind.
type band struct {
	upTo float64
	kind core.EnemyKind
}

// bands is a cumulative table over [0,1). Every band is 6% wide except
// boss (4%) and the megaboss catch-all.
var bands = []band{
	{0.06, core.EnemyNormal},
	{0.12, core.EnemyFast},
	{0.18, core.EnemyArmored},
	{0.24, core.EnemyDrone},
	{0.30, core.EnemySniper},
	{0.36, core.EnemyLarge},
	{0.40, core.EnemyBoss},
	{0.46, core.EnemyStealth},
	{0.52, core.EnemyMissile},
	{0.58, core.EnemyShield},
	{0.64, core.EnemySplitter},
	{0.70, core.EnemyLaser},
	{0.76, core.EnemyElectric},
	{0.82, core.EnemyMiner},
	{0.88, core.EnemyTeleporter},
	{0.94, core.EnemyHealer},
}

// Pick maps a uniform draw in [0,1) to an enemy kind.
func Pick(r float64) core.EnemyKind {
	for _, b := range bands {
		if r < b.upTo {
			return b.kind
		}
	}
	return core.EnemyMegaboss
}

// Controller decides how many enemies enter each tick. Its three rules
// are evaluated against the same pre-spawn count and add up.
type Controller struct {
	Floor        int // population floor
	Burst        int // most enemies the floor rule adds in one tick
	TrickleEvery uint64
	TrickleCap   int
	BackupEvery  uint64
	BackupFloor  int
	Jitter       float64 // spawn x is in [width, width+Jitter)
}

// NewController returns the standard tuning.
func NewController() *Controller {
	return &Controller{
		Floor:        6,
		Burst:        2,
		TrickleEvery: 30,
		TrickleCap:   10,
		BackupEvery:  45,
		BackupFloor:  3,
		Jitter:       core.OnScreenMargin,
	}
}

// Count is how many enemies should spawn this frame given the number
// currently on screen.
func (c *Controller) Count(frame uint64, onScreen int) int {
	n := 0
	if onScreen < c.Floor {
		n += min(c.Floor-onScreen, c.Burst)
	}
	if c.TrickleEvery > 0 && frame%c.TrickleEvery == 0 && onScreen < c.TrickleCap {
		n++
	}
	if c.BackupEvery > 0 && frame%c.BackupEvery == 0 && onScreen < c.BackupFloor {
		n++
	}
	return n
}

// MaybeSpawn creates the enemies due this frame. The caller adds them to the world.
func (c *Controller) MaybeSpawn(w *core.World, frame uint64, level, onScreen int) []*core.Enemy {
	n := c.Count(frame, onScreen)
	if n == 0 {
		return nil
	}
	out := make([]*core.Enemy, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, c.create(w, level))
	}
	return out
}

// create places a random enemy just past the right edge.
func (c *Controller) create(w *core.World, level int) *core.Enemy {
	kind := Pick(w.RNG.Float64())
	p := enemy.ProfileOf(kind)
	x := w.Width + w.RNG.Float64()*c.Jitter
	y := w.RNG.Float64() * (w.Height - p.H)
	return enemy.NewAtLevel(w, kind, level, x, y)
}
