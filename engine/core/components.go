package core

import "image/color"

// ---- Enemies ----

// EnemyKind is the behavior tag of an enemy.
type EnemyKind uint8

const (
	EnemyNormal EnemyKind = iota
	EnemyFast
	EnemyArmored
	EnemyDrone
	EnemySniper
	EnemyLarge
	EnemyBoss
	EnemyStealth
	EnemyMissile
	EnemyShield
	EnemySplitter
	EnemyLaser
	EnemyElectric
	EnemyMiner
	EnemyTeleporter
	EnemyHealer
	EnemyMegaboss
	EnemyMini
	NumEnemyKinds
)

var enemyKindNames = [NumEnemyKinds]string{
	"normal", "fast", "armored", "drone", "sniper", "large", "boss", "stealth",
	"missile", "shield", "splitter", "laser", "electric", "miner", "teleporter",
	"healer", "megaboss", "mini",
}

func (k EnemyKind) String() string {
	if k < NumEnemyKinds {
		return enemyKindNames[k]
	}
	return "unknown"
}

// EnemyBehavior owns a kind's extra state and drives its per-tick logic.
type EnemyBehavior interface {
	// Move advances position and kind-specific timers.
	Move(e *Enemy, w *World)
	// Fire is called when the shoot cooldown expires. Gated kinds may
	// decline to spawn anything.
	Fire(e *Enemy, w *World)
}

// Enemy is a hostile ship. Position is the top-left corner.
type Enemy struct {
	X, Y          float64
	W, H          float64
	Health        int
	MaxHealth     int
	Speed         float64
	Kind          EnemyKind
	ShootCooldown int
	Rotation      float64
	Behavior      EnemyBehavior
}

func (e *Enemy) Bounds() Rect { return Rect{e.X, e.Y, e.W, e.H} }

func (e *Enemy) Alive() bool { return e.Health > 0 }

// ---- Projectiles ----

// Point is a sampled position.
type Point struct {
	X, Y float64
}

// TrailLength caps the trail history of a player bullet.
const TrailLength = 5

// Bullet is fired by a player.
type Bullet struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Life   int
	Owner  int // player slot, 0 or 1
	Trail  []Point
}

func (b *Bullet) Bounds() Rect { return Rect{b.X, b.Y, b.Size, b.Size} }

// BulletKind is the behavior tag of an enemy bullet.
type BulletKind uint8

const (
	BulletNormal BulletKind = iota
	BulletFast
	BulletHoming
	BulletSniper
	BulletSpread
	BulletStealth
	BulletMissile
	BulletPiercing
	BulletSplit
	BulletLaser
	BulletElectric
	BulletMine
	BulletTeleport
	BulletHeal
	BulletMegaboss
	BulletMegalaser
	BulletMini
	BulletBoss
	NumBulletKinds
)

var bulletKindNames = [NumBulletKinds]string{
	"normal", "fast", "homing", "sniper", "spread", "stealth", "missile",
	"piercing", "split", "laser", "electric", "mine", "teleport", "heal",
	"megaboss", "megalaser", "mini", "boss",
}

func (k BulletKind) String() string {
	if k < NumBulletKinds {
		return bulletKindNames[k]
	}
	return "unknown"
}

// BulletBehavior runs the kind-specific logic that precedes motion.
type BulletBehavior interface {
	// Step returns false when the bullet was consumed (split, detonated)
	// and must be removed without moving.
	Step(b *EnemyBullet, w *World) bool
}

// EnemyBullet is fired by an enemy.
type EnemyBullet struct {
	X, Y     float64
	VX, VY   float64
	Size     float64
	Life     int
	Kind     BulletKind
	Behavior BulletBehavior
}

func (b *EnemyBullet) Bounds() Rect { return Rect{b.X, b.Y, b.Size, b.Size} }

// ---- Effects & pickups ----

// Particle is a cosmetic spark. Life counts down from MaxLife.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Color   color.RGBA
	Size    float64
}

// Alpha is the remaining life fraction, used for fading.
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// PowerupKind identifies what a pickup grants.
type PowerupKind uint8

const (
	PowerupHealth PowerupKind = iota
)

const (
	PowerupSize   = 20
	PowerupLife   = 300
	PowerupDrift  = 2
	PowerupHeal   = 50
	PowerupChance = 0.3
)

// Powerup drifts left until collected or expired.
type Powerup struct {
	X, Y     float64
	Kind     PowerupKind
	Life     int
	Rotation float64
}

func (p *Powerup) Bounds() Rect { return Rect{p.X, p.Y, PowerupSize, PowerupSize} }
