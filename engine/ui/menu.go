package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/1siamBot/shooter-engine/engine/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	menuShade  = color.RGBA{0, 0, 0, 160}
	menuPanel  = color.RGBA{15, 15, 30, 230}
	menuBorder = color.RGBA{0, 140, 200, 255}
	menuAccent = color.RGBA{0, 170, 255, 255}
	menuText   = color.RGBA{200, 220, 255, 255}
	menuDim    = color.RGBA{136, 136, 136, 255}
	menuRed    = color.RGBA{220, 50, 50, 255}
	menuGold   = color.RGBA{255, 255, 0, 255}
)

// Menu draws the full-screen overlays for every non-playing state
type Menu struct {
	ScreenW, ScreenH int
	Tick             float64

	face *text.GoXFace
}

func NewMenu(sw, sh int) *Menu {
	return &Menu{ScreenW: sw, ScreenH: sh, face: text.NewGoXFace(basicfont.Face7x13)}
}

// Update advances the title pulse
func (m *Menu) Update() {
	m.Tick += 1.0 / 60
}

// Draw renders the overlay for state, if it has one
func (m *Menu) Draw(screen *ebiten.Image, state core.GameState, s core.Stats) {
	switch state {
	case core.StateStart:
		m.drawTitle(screen)
	case core.StatePaused:
		m.drawPause(screen)
	case core.StateGameOver:
		m.drawGameOver(screen, s)
	}
}

func (m *Menu) drawTitle(screen *ebiten.Image) {
	cx, cy := float64(m.ScreenW)/2, float64(m.ScreenH)/2
	m.printCentered(screen, "SPACE FIGHTER", cx, cy-120, 3, menuAccent)
	m.printCentered(screen, "- Stellar Combat -", cx, cy-80, 1.5, menuText)

	lines := []string{
		"Side-scrolling shooter",
		"Take on 17 kinds of enemy!",
		"",
		"Move: arrow keys or WASD",
		"Fire: Space",
		"Music on/off: M",
		"2-Player mode: P",
	}
	for i, l := range lines {
		m.printCentered(screen, l, cx, cy+60+float64(i)*20, 1, menuDim)
	}

	pulse := 0.6 + 0.4*math.Sin(m.Tick*4)
	m.printCentered(screen, "Press SPACE to start!", cx, cy+220, 2, fadeColor(menuGold, pulse))
}

func (m *Menu) drawPause(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(m.ScreenW), float32(m.ScreenH), menuShade, false)
	cx, cy := float64(m.ScreenW)/2, float64(m.ScreenH)/2
	m.drawPanel(screen, cx-150, cy-60, 300, 120)
	m.printCentered(screen, "PAUSED", cx, cy-30, 2, menuText)
	m.printCentered(screen, "Press ESC to resume", cx, cy+20, 1, menuDim)
}

func (m *Menu) drawGameOver(screen *ebiten.Image, s core.Stats) {
	vector.DrawFilledRect(screen, 0, 0, float32(m.ScreenW), float32(m.ScreenH), menuShade, false)
	cx, cy := float64(m.ScreenW)/2, float64(m.ScreenH)/2
	m.drawPanel(screen, cx-200, cy-120, 400, 240)
	m.printCentered(screen, "GAME OVER", cx, cy-90, 3, menuRed)
	vector.DrawFilledRect(screen, float32(cx-80), float32(cy-40), 160, 3, menuRed, false)
	m.printCentered(screen, fmt.Sprintf("Score: %d", s.Score), cx, cy-10, 1.5, menuText)
	m.printCentered(screen, fmt.Sprintf("Level: %d", s.Level), cx, cy+20, 1.5, menuText)
	m.printCentered(screen, "Press SPACE to play again", cx, cy+70, 1, menuDim)
}

func (m *Menu) drawPanel(screen *ebiten.Image, x, y, w, h float64) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), menuPanel, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, menuBorder, false)
}

// printCentered draws str scaled and centered on (x, y)
func (m *Menu) printCentered(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	if str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, str, m.face, op)
}

func fadeColor(c color.RGBA, a float64) color.RGBA {
	return color.RGBA{uint8(float64(c.R) * a), uint8(float64(c.G) * a), uint8(float64(c.B) * a), uint8(float64(c.A) * a)}
}
