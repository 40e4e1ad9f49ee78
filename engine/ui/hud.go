// Package ui draws the heads-up display and the title, pause and game
// over screens on top of the playfield.
package ui

import (
	"fmt"
	"image/color"

	"github.com/1siamBot/shooter-engine/engine/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	barX, barY   = 20, 20
	barW, barH   = 200, 20
	barSpacing   = 30
	barInset     = 2
	hintWidthP1  = 250
	hintWidthP2  = 350
	hintFromBase = 30
)

var (
	barTrack  = color.RGBA{51, 51, 51, 255}
	barGood   = color.RGBA{0, 255, 0, 255}
	barWarn   = color.RGBA{255, 255, 0, 255}
	barDanger = color.RGBA{255, 0, 0, 255}
)

// HUD is the in-game overlay: health bars, score and level
type HUD struct {
	ScreenW, ScreenH int
	ShowFPS          bool
}

func NewHUD(sw, sh int) *HUD {
	return &HUD{ScreenW: sw, ScreenH: sh}
}

// Draw renders the HUD from the latest stats
func (h *HUD) Draw(screen *ebiten.Image, s core.Stats) {
	h.drawHealth(screen, 0, s.Health[0], s.MaxHealth[0])
	if s.Player2 {
		h.drawHealth(screen, 1, s.Health[1], s.MaxHealth[1])
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", s.Score), 20, h.ScreenH-80)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level: %d", s.Level), 20, h.ScreenH-60)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Enemies: %d", s.OnScreenTotal), 20, h.ScreenH-40)

	if s.Player2 {
		ebitenutil.DebugPrintAt(screen, "P1: WASD + Space | P2: IJKL + Enter", h.ScreenW-hintWidthP2, h.ScreenH-hintFromBase)
	} else {
		ebitenutil.DebugPrintAt(screen, "Press P for 2-Player Mode", h.ScreenW-hintWidthP1, h.ScreenH-hintFromBase)
	}
	if h.ShowFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), h.ScreenW-120, 8)
	}
}

func (h *HUD) drawHealth(screen *ebiten.Image, slot, hp, maxHP int) {
	y := float32(barY + slot*barSpacing)
	vector.DrawFilledRect(screen, barX, y, barW, barH, barTrack, false)
	if hp > 0 && maxHP > 0 {
		ratio := float32(hp) / float32(maxHP)
		vector.DrawFilledRect(screen, barX+barInset, y+barInset, (barW-2*barInset)*ratio, barH-2*barInset, HealthColor(ratio), false)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("P%d Health: %d/%d", slot+1, hp, maxHP), barX+barW+10, int(y)+3)
}

// HealthColor is green above half, yellow above a quarter, red below
func HealthColor(ratio float32) color.RGBA {
	switch {
	case ratio > 0.5:
		return barGood
	case ratio > 0.25:
		return barWarn
	default:
		return barDanger
	}
}
