package core

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Effect colors requested alongside particle bursts.
var (
	ColorMuzzleP1  = colornames.Yellow
	ColorMuzzleP2  = colornames.Lime
	ColorHeal      = colornames.Lime
	ColorPlayerHit = colornames.Red
	ColorEnemyHit  = color.RGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff}

	explosionOrange = color.RGBA{R: 0xff, G: 0x88, B: 0x00, A: 0xff}
	explosionYellow = colornames.Yellow
	explosionRed    = colornames.Red
)

// MuzzleColor is the flash color for the given player slot.
func MuzzleColor(player int) color.RGBA {
	if player == 1 {
		return ColorMuzzleP2
	}
	return ColorMuzzleP1
}
