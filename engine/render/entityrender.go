package render

import (
	"image/color"

	"github.com/1siamBot/shooter-engine/engine/core"
	"github.com/1siamBot/shooter-engine/engine/enemy"
	"github.com/1siamBot/shooter-engine/engine/projectile"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawEnemies draws every enemy with its kind's outline and a health bar
func (r *Renderer) DrawEnemies(screen *ebiten.Image, w *core.World) {
	for _, e := range w.Enemies {
		clr := EnemyColors[0]
		if e.Kind < core.NumEnemyKinds {
			clr = EnemyColors[e.Kind]
		}
		if s, ok := e.Behavior.(*enemy.Stealth); ok && !s.Visible {
			clr = fade(clr, 0.2)
		}
		r.DrawEnemyShape(screen, e, clr)

		if e.Health > 1 {
			full := enemy.MaxHealth(e.Kind)
			ratio := float32(e.Health) / float32(full)
			if ratio > 1 {
				ratio = 1
			}
			x, y, bw := float32(e.X), float32(e.Y-10), float32(e.W)
			vector.DrawFilledRect(screen, x, y, bw, 4, color.RGBA{255, 0, 0, 255}, false)
			vector.DrawFilledRect(screen, x, y, bw*ratio, 4, color.RGBA{0, 255, 0, 255}, false)
		}
	}
}

// DrawEnemyShape draws the hull outline for e's kind, rotated about its center
func (r *Renderer) DrawEnemyShape(screen *ebiten.Image, e *core.Enemy, clr color.RGBA) {
	cx, cy := e.X+e.W/2, e.Y+e.H/2
	hw, hh := e.W/2, e.H/2
	var pts []point
	switch e.Kind {
	case core.EnemyFast:
		pts = []point{{cx + hw, cy}, {cx - e.W/3, cy - e.H/3}, {cx - hw, cy}, {cx - e.W/3, cy + e.H/3}}
	case core.EnemyDrone, core.EnemyElectric, core.EnemyHealer:
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(hw), clr, true)
		vector.StrokeLine(screen, float32(cx-hw), float32(cy-5), float32(cx+hw), float32(cy-5), 2, clr, true)
		vector.StrokeLine(screen, float32(cx-hw), float32(cy+5), float32(cx+hw), float32(cy+5), 2, clr, true)
		return
	case core.EnemySniper, core.EnemyLaser:
		pts = []point{{cx + hw, cy}, {cx - e.W/4, cy - hh}, {cx - hw, cy - e.H/4}, {cx - hw, cy + e.H/4}, {cx - e.W/4, cy + hh}}
	case core.EnemyArmored, core.EnemyShield, core.EnemyLarge:
		pts = []point{{cx - hw, cy - hh}, {cx + hw, cy - hh}, {cx + hw, cy + hh}, {cx - hw, cy + hh}}
	case core.EnemyBoss, core.EnemyMegaboss:
		pts = []point{{cx - hw, cy}, {cx - hw/2, cy - hh}, {cx + hw/2, cy - hh}, {cx + hw, cy}, {cx + hw/2, cy + hh}, {cx - hw/2, cy + hh}}
	default:
		pts = []point{{cx - hw, cy}, {cx + hw, cy - hh}, {cx + hw*0.6, cy}, {cx + hw, cy + hh}}
	}
	r.fillPolygon(screen, rotate(pts, cx, cy, e.Rotation), clr)

	if e.Kind == core.EnemyBoss {
		white := color.RGBA{255, 255, 255, 255}
		vector.DrawFilledCircle(screen, float32(cx-10), float32(cy-10), 3, white, true)
		vector.DrawFilledCircle(screen, float32(cx-10), float32(cy+10), 3, white, true)
	}
}

// DrawEnemyBullets draws enemy fire by kind
func (r *Renderer) DrawEnemyBullets(screen *ebiten.Image, w *core.World) {
	for _, b := range w.EnemyBullets {
		clr := BulletColors[0]
		if b.Kind < core.NumBulletKinds {
			clr = BulletColors[b.Kind]
		}
		x, y, s := float32(b.X), float32(b.Y), float32(b.Size)
		switch b.Kind {
		case core.BulletLaser, core.BulletMegalaser:
			vector.DrawFilledRect(screen, x-s, y-s/4, s*2, s/2, clr, false)
		case core.BulletHoming, core.BulletMissile:
			vector.StrokeLine(screen, float32(b.X-b.VX*3), float32(b.Y-b.VY*3), x, y, 1, clr, true)
			vector.DrawFilledCircle(screen, x, y, s/2, clr, true)
		case core.BulletMine:
			if m, ok := b.Behavior.(*projectile.Mine); ok && m.Armed {
				clr = ColorMineLive
			}
			vector.DrawFilledCircle(screen, x, y, s/2, clr, true)
			vector.StrokeCircle(screen, x, y, s/2+2, 1, clr, true)
		default:
			vector.DrawFilledCircle(screen, x, y, s/2, clr, true)
		}
	}
}
