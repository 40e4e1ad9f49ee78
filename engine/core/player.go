package core

const (
	PlayerWidth        = 60
	PlayerHeight       = 30
	PlayerMaxHealth    = 200
	PlayerSpeed        = 3
	PlayerFireCooldown = 5
)

// Player is a locally controlled ship. Slot 0 is always present;
// slot 1 only plays while Active.
type Player struct {
	Slot          int
	X, Y          float64
	W, H          float64
	Health        int
	MaxHealth     int
	Speed         float64
	ShootCooldown int
	Active        bool
}

// NewPlayer creates a player at the spawn point for its slot.
func NewPlayer(slot int, fieldW, fieldH float64) *Player {
	p := &Player{
		Slot:      slot,
		W:         PlayerWidth,
		H:         PlayerHeight,
		MaxHealth: PlayerMaxHealth,
		Speed:     PlayerSpeed,
		Active:    slot == 0,
	}
	p.Respawn(fieldH)
	return p
}

// Respawn restores full health and moves the player back to its spawn point.
func (p *Player) Respawn(fieldH float64) {
	p.Health = p.MaxHealth
	p.ShootCooldown = 0
	if p.Slot == 0 {
		p.X, p.Y = 100, fieldH/2
	} else {
		p.X, p.Y = 50, fieldH/2+60
	}
}

func (p *Player) Alive() bool { return p.Health > 0 }

// Playing reports whether the player takes part in the current tick.
func (p *Player) Playing() bool { return p.Active && p.Health > 0 }

func (p *Player) Bounds() Rect { return Rect{p.X, p.Y, p.W, p.H} }

// Hitbox is the shrunk box used for every collision test against a player.
func (p *Player) Hitbox() Rect { return p.Bounds().Shrink(HitboxShrink) }

// Muzzle is the point bullets leave from.
func (p *Player) Muzzle() (float64, float64) {
	return p.X + p.W, p.Y + p.H/2
}

// Damage subtracts n, never going below zero.
func (p *Player) Damage(n int) {
	p.Health -= n
	if p.Health < 0 {
		p.Health = 0
	}
}

// Heal adds n, never exceeding MaxHealth.
func (p *Player) Heal(n int) {
	p.Health += n
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// Clamp keeps the player inside a fieldW x fieldH playfield.
func (p *Player) Clamp(fieldW, fieldH float64) {
	p.X = clamp(p.X, 0, fieldW-p.W)
	p.Y = clamp(p.Y, 0, fieldH-p.H)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
