// Package render draws the world with Ebitengine vector primitives.
package render

import (
	"image/color"
	"math"

	"github.com/1siamBot/shooter-engine/engine/background"
	"github.com/1siamBot/shooter-engine/engine/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer draws a world and its backdrop onto the screen
type Renderer struct {
	Hitboxes bool // overlay collision boxes

	whiteImg *ebiten.Image
}

// NewRenderer creates a renderer
func NewRenderer(hitboxes bool) *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Renderer{Hitboxes: hitboxes, whiteImg: white}
}

// Draw renders the whole playfield, back to front
func (r *Renderer) Draw(screen *ebiten.Image, w *core.World, bg *background.Field) {
	screen.Fill(ColorSky)
	if bg != nil {
		r.DrawBackground(screen, bg)
	}
	r.DrawPowerups(screen, w)
	for _, p := range w.Players {
		if p.Playing() {
			r.DrawPlayer(screen, p)
		}
	}
	r.DrawBullets(screen, w)
	r.DrawEnemies(screen, w)
	r.DrawEnemyBullets(screen, w)
	r.DrawParticles(screen, w)
	if r.Hitboxes {
		r.DrawHitboxes(screen, w)
	}
}

// DrawBackground draws the starfield and parallax scenery
func (r *Renderer) DrawBackground(screen *ebiten.Image, bg *background.Field) {
	for i := range bg.Layers {
		l := &bg.Layers[i]
		clr := fade(layerColors[(l.Depth-1)%len(layerColors)], 0.3)
		for _, o := range l.Objects {
			x, y, s := float32(o.X), float32(o.Y), float32(o.Size)
			switch o.Shape {
			case 0:
				vector.DrawFilledCircle(screen, x, y, s/2, clr, true)
			case 1:
				vector.DrawFilledRect(screen, x-s/2, y-s/2, s, s, clr, false)
			default:
				r.fillPolygon(screen, []point{{o.X, o.Y - o.Size/2}, {o.X + o.Size/2, o.Y + o.Size/2}, {o.X - o.Size/2, o.Y + o.Size/2}}, clr)
			}
		}
	}
	for _, s := range bg.Stars {
		depth := 1 - s.Z/background.StarDepth
		size := float32(depth*2 + 0.5)
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), size, size, fade(ColorStar, depth*0.8+0.2), false)
	}
}

// DrawPlayer draws one ship as a hull, wing and cockpit
func (r *Renderer) DrawPlayer(screen *ebiten.Image, p *core.Player) {
	hull := ColorP1Hull
	if p.Slot == 1 {
		hull = ColorP2Hull
	}
	x, y, w, h := p.X, p.Y, p.W, p.H
	r.fillPolygon(screen, []point{{x + w, y + h/2}, {x, y}, {x + w*0.2, y + h/2}, {x, y + h}}, hull)
	r.fillPolygon(screen, []point{{x + w*0.6, y + h/2}, {x + w*0.2, y - h*0.2}, {x + w*0.3, y + h/2}, {x + w*0.2, y + h*1.2}}, fade(hull, 0.7))
	vector.DrawFilledCircle(screen, float32(x+w*0.65), float32(y+h/2), float32(h/5), ColorCockpit, true)
	vector.DrawFilledRect(screen, float32(x-6), float32(y+h/2-3), 6, 6, ColorEngine, false)
}

// DrawBullets draws player bullets with their fading trails
func (r *Renderer) DrawBullets(screen *ebiten.Image, w *core.World) {
	for _, b := range w.Bullets {
		clr := core.MuzzleColor(b.Owner)
		n := len(b.Trail)
		for i, t := range b.Trail {
			a := float64(i+1) / float64(n+1)
			vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), float32(b.Size/2*a), fade(clr, a*0.5), true)
		}
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Size/2+1), clr, true)
	}
}

// DrawParticles draws every spark, fading with remaining life
func (r *Renderer) DrawParticles(screen *ebiten.Image, w *core.World) {
	for _, p := range w.Particles {
		s := float32(p.Size)
		vector.DrawFilledRect(screen, float32(p.X)-s/2, float32(p.Y)-s/2, s, s, fade(p.Color, p.Alpha()), false)
	}
}

// DrawPowerups draws each pickup as a rotating cross
func (r *Renderer) DrawPowerups(screen *ebiten.Image, w *core.World) {
	for _, p := range w.Powerups {
		cx, cy := p.X+core.PowerupSize/2, p.Y+core.PowerupSize/2
		vector.StrokeCircle(screen, float32(cx), float32(cy), core.PowerupSize/2, 2, ColorPowerup, true)
		arm := float64(core.PowerupSize) * 0.35
		for k := 0; k < 2; k++ {
			a := p.Rotation + float64(k)*math.Pi/2
			dx, dy := math.Cos(a)*arm, math.Sin(a)*arm
			vector.StrokeLine(screen, float32(cx-dx), float32(cy-dy), float32(cx+dx), float32(cy+dy), 3, ColorPowerup, true)
		}
	}
}

// DrawHitboxes overlays shrunk player hitboxes and enemy bounds
func (r *Renderer) DrawHitboxes(screen *ebiten.Image, w *core.World) {
	for _, p := range w.Players {
		if !p.Playing() {
			continue
		}
		hb := p.Hitbox()
		vector.DrawFilledRect(screen, float32(hb.X), float32(hb.Y), float32(hb.W), float32(hb.H), ColorHitbox, false)
	}
	for _, e := range w.Enemies {
		vector.DrawFilledRect(screen, float32(e.X), float32(e.Y), float32(e.W), float32(e.H), ColorHurtbox, false)
	}
}

type point struct{ X, Y float64 }

// fillPolygon fills a convex outline in a single color
func (r *Renderer) fillPolygon(dst *ebiten.Image, pts []point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	dst.DrawTriangles(vs, is, r.whiteImg, nil)
}

// rotate turns outline points about (cx, cy)
func rotate(pts []point, cx, cy, angle float64) []point {
	if angle == 0 {
		return pts
	}
	sin, cos := math.Sincos(angle)
	for i, p := range pts {
		dx, dy := p.X-cx, p.Y-cy
		pts[i] = point{cx + dx*cos - dy*sin, cy + dx*sin + dy*cos}
	}
	return pts
}
