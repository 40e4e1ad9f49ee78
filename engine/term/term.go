// Package term draws the world onto a character terminal through tcell.
// Each cell covers a block of playfield pixels.
package term

import (
	"fmt"

	"github.com/1siamBot/shooter-engine/engine/background"
	"github.com/1siamBot/shooter-engine/engine/core"
	"github.com/1siamBot/shooter-engine/engine/enemy"
	"github.com/gdamore/tcell/v2"
)

var (
	styleP1      = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleP2      = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleBullet  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBoss    = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleHidden  = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
	styleShot    = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleSpark   = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	stylePowerup = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStar    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Glyphs shows each enemy kind as a single letter
var Glyphs = [core.NumEnemyKinds]rune{
	core.EnemyNormal:     'n',
	core.EnemyFast:       'f',
	core.EnemyArmored:    'A',
	core.EnemyDrone:      'o',
	core.EnemySniper:     's',
	core.EnemyLarge:      'L',
	core.EnemyBoss:       'B',
	core.EnemyStealth:    'h',
	core.EnemyMissile:    'm',
	core.EnemyShield:     'S',
	core.EnemySplitter:   'x',
	core.EnemyLaser:      'z',
	core.EnemyElectric:   'e',
	core.EnemyMiner:      'i',
	core.EnemyTeleporter: 't',
	core.EnemyHealer:     '+',
	core.EnemyMegaboss:   'M',
	core.EnemyMini:       '.',
}

// Renderer maps the playfield onto the screen below a one-line HUD
type Renderer struct {
	Screen tcell.Screen
}

func NewRenderer(s tcell.Screen) *Renderer {
	return &Renderer{Screen: s}
}

// cell converts a playfield position to a screen cell, or ok=false off screen
func (r *Renderer) cell(w *core.World, x, y float64) (cx, cy int, ok bool) {
	cols, rows := r.Screen.Size()
	rows-- // HUD
	if cols <= 0 || rows <= 0 || x < 0 || y < 0 || x >= w.Width || y >= w.Height {
		return 0, 0, false
	}
	cx = int(x / w.Width * float64(cols))
	cy = int(y/w.Height*float64(rows)) + 1
	return cx, cy, true
}

func (r *Renderer) put(w *core.World, x, y float64, ch rune, st tcell.Style) {
	if cx, cy, ok := r.cell(w, x, y); ok {
		r.Screen.SetContent(cx, cy, ch, nil, st)
	}
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(w *core.World, bg *background.Field) {
	r.Screen.Clear()
	if bg != nil {
		for _, s := range bg.Stars {
			if s.Z < background.StarDepth/4 {
				r.put(w, s.X, s.Y, '·', styleStar)
			}
		}
	}
	for _, p := range w.Particles {
		r.put(w, p.X, p.Y, '*', styleSpark)
	}
	for _, p := range w.Powerups {
		r.put(w, p.X+core.PowerupSize/2, p.Y+core.PowerupSize/2, '♥', stylePowerup)
	}
	for _, b := range w.Bullets {
		r.put(w, b.X, b.Y, '-', styleBullet)
	}
	for _, b := range w.EnemyBullets {
		r.put(w, b.X, b.Y, '•', styleShot)
	}
	for _, e := range w.Enemies {
		st := styleEnemy
		switch {
		case e.Kind == core.EnemyBoss || e.Kind == core.EnemyMegaboss:
			st = styleBoss
		case isHidden(e):
			st = styleHidden
		}
		glyph := '?'
		if e.Kind < core.NumEnemyKinds {
			glyph = Glyphs[e.Kind]
		}
		r.put(w, e.X+e.W/2, e.Y+e.H/2, glyph, st)
	}
	for _, p := range w.Players {
		if !p.Playing() {
			continue
		}
		st := styleP1
		if p.Slot == 1 {
			st = styleP2
		}
		r.put(w, p.X+p.W/2, p.Y+p.H/2, '>', st)
	}
	r.drawHUD(w)
	r.drawBanner(w)
	r.Screen.Show()
}

func isHidden(e *core.Enemy) bool {
	s, ok := e.Behavior.(*enemy.Stealth)
	return ok && !s.Visible
}

func (r *Renderer) drawHUD(w *core.World) {
	line := fmt.Sprintf(" P1 %3d/%d  Score %d  Level %d  Enemies %d ",
		w.Players[0].Health, w.Players[0].MaxHealth, w.Score, w.Level, w.OnScreenCount())
	if w.Players[1].Active {
		line += fmt.Sprintf(" P2 %3d/%d ", w.Players[1].Health, w.Players[1].MaxHealth)
	}
	r.printAt(0, 0, line, styleHUD)
}

func (r *Renderer) drawBanner(w *core.World) {
	var msg string
	switch w.State {
	case core.StateStart:
		msg = "SPACE FIGHTER - press SPACE to start, q to quit"
	case core.StatePaused:
		msg = "PAUSED - ESC to resume"
	case core.StateGameOver:
		msg = fmt.Sprintf("GAME OVER - score %d - SPACE to play again", w.Score)
	default:
		return
	}
	cols, rows := r.Screen.Size()
	r.printAt((cols-len(msg))/2, rows/2, msg, styleBanner)
}

func (r *Renderer) printAt(x, y int, s string, st tcell.Style) {
	for _, ch := range s {
		r.Screen.SetContent(x, y, ch, nil, st)
		x++
	}
}
