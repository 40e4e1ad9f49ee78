package enemy

import "github.com/1siamBot/shooter-engine/engine/core"

// Profile holds the fixed stats of an enemy kind. Only speed scales
// with level: speed = Speed + level*SpeedPerLevel.
type Profile struct {
	W, H          float64
	Health        int
	Speed         float64
	SpeedPerLevel float64
	FirstShot     int // initial shoot cooldown
	Cooldown      int // ticks between shots
	Score         int
	Spin          float64 // rotation added per tick
}

var profiles = [core.NumEnemyKinds]Profile{
	core.EnemyNormal:     {W: 40, H: 30, Health: 1, Speed: 1, SpeedPerLevel: 0.2, Cooldown: 120, Score: 100, Spin: 0.02},
	core.EnemyFast:       {W: 30, H: 20, Health: 1, Speed: 2.2, SpeedPerLevel: 0.3, Cooldown: 80, Score: 120, Spin: 0.05},
	core.EnemyArmored:    {W: 50, H: 40, Health: 3, Speed: 0.6, SpeedPerLevel: 0.15, Cooldown: 90, Score: 180, Spin: 0.015},
	core.EnemyDrone:      {W: 35, H: 25, Health: 1, Speed: 0.9, SpeedPerLevel: 0.2, Cooldown: 100, Score: 150, Spin: 0.03},
	core.EnemySniper:     {W: 45, H: 35, Health: 2, Speed: 0.4, SpeedPerLevel: 0.15, Cooldown: 180, Score: 200, Spin: 0.01},
	core.EnemyLarge:      {W: 80, H: 60, Health: 2, Speed: 0.8, SpeedPerLevel: 0.15, Cooldown: 120, Score: 200, Spin: 0.02},
	core.EnemyBoss:       {W: 120, H: 100, Health: 5, Speed: 0.4, SpeedPerLevel: 0.08, Cooldown: 60, Score: 500, Spin: 0.02},
	core.EnemyStealth:    {W: 35, H: 25, Health: 1, Speed: 1.5, SpeedPerLevel: 0.25, Cooldown: 70, Score: 160, Spin: 0.04},
	core.EnemyMissile:    {W: 55, H: 40, Health: 2, Speed: 0.7, SpeedPerLevel: 0.18, Cooldown: 200, Score: 220, Spin: 0.02},
	core.EnemyShield:     {W: 60, H: 45, Health: 4, Speed: 0.5, SpeedPerLevel: 0.12, Cooldown: 110, Score: 250, Spin: 0.01},
	core.EnemySplitter:   {W: 50, H: 35, Health: 2, Speed: 1.1, SpeedPerLevel: 0.2, Cooldown: 85, Score: 140, Spin: 0.03},
	core.EnemyLaser:      {W: 65, H: 50, Health: 3, Speed: 0.3, SpeedPerLevel: 0.1, Cooldown: 300, Score: 300, Spin: 0.005},
	core.EnemyElectric:   {W: 40, H: 30, Health: 1, Speed: 1.8, SpeedPerLevel: 0.3, Cooldown: 60, Score: 130, Spin: 0.06},
	core.EnemyMiner:      {W: 45, H: 35, Health: 2, Speed: 0.8, SpeedPerLevel: 0.15, Cooldown: 150, Score: 190, Spin: 0.02},
	core.EnemyTeleporter: {W: 35, H: 25, Health: 1, Speed: 1.3, SpeedPerLevel: 0.25, Cooldown: 95, Score: 170, Spin: 0.08},
	core.EnemyHealer:     {W: 50, H: 40, Health: 2, Speed: 0.6, SpeedPerLevel: 0.15, Cooldown: 140, Score: 280, Spin: 0.015},
	core.EnemyMegaboss:   {W: 200, H: 150, Health: 10, Speed: 0.2, SpeedPerLevel: 0.05, Cooldown: 40, Score: 1000, Spin: 0.005},
	core.EnemyMini:       {W: 25, H: 20, Health: 1, Speed: 1.8, SpeedPerLevel: 0.3, FirstShot: 60, Cooldown: 120, Score: 100, Spin: 0.02},
}

// ProfileOf returns the stats for k, or normal's for an unknown kind.
func ProfileOf(k core.EnemyKind) Profile {
	if k >= core.NumEnemyKinds {
		return profiles[core.EnemyNormal]
	}
	return profiles[k]
}

// MaxHealth is the health a kind spawns with, and the cap for healing.
func MaxHealth(k core.EnemyKind) int {
	return ProfileOf(k).Health
}

// Score is the reward for destroying a kind.
func Score(k core.EnemyKind) int {
	return ProfileOf(k).Score
}
