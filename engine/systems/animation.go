package systems

import (
	"github.com/1siamBot/shooter-engine/engine/core"
)

const (
	particleDamping = 0.98
	powerupSpin     = 0.05
	powerupExit     = -20
)

// ParticleSystem moves and fades particles
type ParticleSystem struct{}

func (s *ParticleSystem) Priority() int { return PriorityParticles }

func (s *ParticleSystem) Update(w *core.World) {
	kept := w.Particles[:0]
	for _, p := range w.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= particleDamping
		p.VY *= particleDamping
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	clear(w.Particles[len(kept):])
	w.Particles = kept
}

// PowerupSystem drifts and spins pickups until they expire
type PowerupSystem struct{}

func (s *PowerupSystem) Priority() int { return PriorityPowerups }

func (s *PowerupSystem) Update(w *core.World) {
	kept := w.Powerups[:0]
	for _, p := range w.Powerups {
		p.X -= core.PowerupDrift
		p.Life--
		p.Rotation += powerupSpin
		if p.Life > 0 && p.X >= powerupExit {
			kept = append(kept, p)
		}
	}
	clear(w.Powerups[len(kept):])
	w.Powerups = kept
}
