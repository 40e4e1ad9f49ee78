// Package systems wires the gameplay engines into the fixed per-tick pipeline.
package systems

import (
	"github.com/1siamBot/shooter-engine/engine/background"
	"github.com/1siamBot/shooter-engine/engine/core"
	"github.com/1siamBot/shooter-engine/engine/spawn"
)

// Pipeline order. Enemies update before collision, so a bullet fired this
// tick cannot hit until the next one.
const (
	PriorityPlayers      = 10
	PriorityBullets      = 20
	PriorityEnemies      = 30
	PriorityEnemyBullets = 40
	PriorityParticles    = 50
	PriorityPowerups     = 60
	PriorityBackground   = 70
	PrioritySpawn        = 80
	PriorityCollision    = 90
)

// Register adds the whole pipeline to w. field may be nil when nothing
// draws the backdrop.
func Register(w *core.World, field *background.Field, spawner *spawn.Controller) {
	if spawner == nil {
		spawner = spawn.NewController()
	}
	w.AddSystem(&PlayerSystem{})
	w.AddSystem(&BulletSystem{})
	w.AddSystem(&EnemySystem{})
	w.AddSystem(&EnemyBulletSystem{})
	w.AddSystem(&ParticleSystem{})
	w.AddSystem(&PowerupSystem{})
	w.AddSystem(&BackgroundSystem{Field: field})
	w.AddSystem(&SpawnSystem{Controller: spawner})
	w.AddSystem(&CollisionSystem{})
}
