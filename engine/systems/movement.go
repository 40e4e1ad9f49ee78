package systems

import (
	"github.com/1siamBot/shooter-engine/engine/core"
	"github.com/1siamBot/shooter-engine/engine/projectile"
)

// playerControls maps one player's logical actions.
type playerControls struct {
	up, down, left, right, fire core.Action
}

var controls = [2]playerControls{
	{core.ActP1Up, core.ActP1Down, core.ActP1Left, core.ActP1Right, core.ActP1Fire},
	{core.ActP2Up, core.ActP2Down, core.ActP2Left, core.ActP2Right, core.ActP2Fire},
}

// PlayerSystem moves the players from the input snapshot and fires their guns
type PlayerSystem struct{}

func (s *PlayerSystem) Priority() int { return PriorityPlayers }

func (s *PlayerSystem) Update(w *core.World) {
	for slot, p := range w.Players {
		if !p.Playing() {
			continue
		}
		c := controls[slot]
		in := w.Input

		if in.Pressed(c.up) {
			p.Y -= p.Speed
		}
		if in.Pressed(c.down) {
			p.Y += p.Speed
		}
		if in.Pressed(c.left) {
			p.X -= p.Speed
		}
		if in.Pressed(c.right) {
			p.X += p.Speed
		}
		p.Clamp(w.Width, w.Height)

		if p.ShootCooldown > 0 {
			p.ShootCooldown--
		}
		if in.Pressed(c.fire) && p.ShootCooldown == 0 {
			ax, ay := in.PointerX, in.PointerY
			if in.NoPointer {
				ax, ay = p.Muzzle()
				ax++
			}
			projectile.FirePlayer(w, p, ax, ay)
			p.ShootCooldown = core.PlayerFireCooldown
		}
	}
}
