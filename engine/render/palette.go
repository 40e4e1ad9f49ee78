package render

import (
	"image/color"

	"github.com/1siamBot/shooter-engine/engine/core"
	"golang.org/x/image/colornames"
)

// EnemyColors maps enemy kinds to their hull color
var EnemyColors = [core.NumEnemyKinds]color.RGBA{
	core.EnemyNormal:     {255, 68, 68, 255},
	core.EnemyFast:       {255, 0, 255, 255},
	core.EnemyArmored:    {136, 136, 136, 255},
	core.EnemyDrone:      {0, 255, 136, 255},
	core.EnemySniper:     {136, 0, 255, 255},
	core.EnemyLarge:      {255, 136, 0, 255},
	core.EnemyBoss:       {255, 0, 0, 255},
	core.EnemyStealth:    {0, 255, 255, 255},
	core.EnemyMissile:    {255, 255, 0, 255},
	core.EnemyShield:     {0, 136, 255, 255},
	core.EnemySplitter:   {255, 136, 136, 255},
	core.EnemyLaser:      {255, 68, 0, 255},
	core.EnemyElectric:   {68, 255, 68, 255},
	core.EnemyMiner:      {204, 136, 68, 255},
	core.EnemyTeleporter: {136, 68, 255, 255},
	core.EnemyHealer:     {136, 255, 136, 255},
	core.EnemyMegaboss:   {255, 0, 136, 255},
	core.EnemyMini:       {255, 170, 170, 255},
}

// BulletColors maps enemy bullet kinds to their color
var BulletColors = [core.NumBulletKinds]color.RGBA{
	core.BulletNormal:    {255, 68, 68, 255},
	core.BulletFast:      {255, 0, 255, 255},
	core.BulletHoming:    {0, 255, 136, 255},
	core.BulletSniper:    {136, 0, 255, 255},
	core.BulletSpread:    {136, 136, 136, 255},
	core.BulletStealth:   {0, 255, 255, 255},
	core.BulletMissile:   {255, 255, 0, 255},
	core.BulletPiercing:  {0, 136, 255, 255},
	core.BulletSplit:     {255, 136, 136, 255},
	core.BulletLaser:     {255, 68, 0, 255},
	core.BulletElectric:  {68, 255, 68, 255},
	core.BulletMine:      {204, 136, 68, 255},
	core.BulletTeleport:  {136, 68, 255, 255},
	core.BulletHeal:      {136, 255, 136, 255},
	core.BulletMegaboss:  {255, 0, 136, 255},
	core.BulletMegalaser: {255, 0, 136, 255},
	core.BulletMini:      {255, 170, 170, 255},
	core.BulletBoss:      {255, 0, 0, 255},
}

// Ship and HUD colors
var (
	ColorP1Hull   = color.RGBA{0, 170, 255, 255}
	ColorP2Hull   = color.RGBA{255, 136, 0, 255}
	ColorCockpit  = colornames.Cyan
	ColorEngine   = color.RGBA{255, 102, 0, 255}
	ColorStar     = colornames.White
	ColorPowerup  = colornames.Lime
	ColorHitbox   = color.RGBA{0, 255, 0, 77}
	ColorHurtbox  = color.RGBA{255, 0, 0, 77}
	ColorSky      = color.RGBA{0, 0, 17, 255}
	ColorMineLive = colornames.Red
)

// layerColors approximates hsl(depth*60, 50%, 30%)
var layerColors = []color.RGBA{
	{115, 115, 38, 255},
	{38, 115, 38, 255},
	{38, 115, 115, 255},
}

// fade scales a color by a in [0,1]; vector colors are premultiplied
func fade(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
