package client

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spaceshooter/game"
)

// Particle is a single cosmetic spark
type Particle struct {
	pos      game.Vec2
	vel      game.Vec2
	age      float64 // age in seconds
	lifetime float64 // total lifetime in seconds
	color    color.NRGBA
	size     float64
}

// IsAlive returns true if the particle is still alive
func (p *Particle) IsAlive() bool {
	return p.age < p.lifetime
}

// BurstStyle describes how one burst of particles looks
type BurstStyle struct {
	Count          int
	VelocityMin    float64
	VelocityMax    float64
	LifetimeMin    float64
	LifetimeMax    float64
	SizeMin        float64
	SizeMax        float64
	ColorBase      color.NRGBA
	ColorVariation color.NRGBA
}

var (
	// ExplosionBurst marks a destroyed hostile
	ExplosionBurst = BurstStyle{
		Count:          40,
		VelocityMin:    60,
		VelocityMax:    220,
		LifetimeMin:    0.3,
		LifetimeMax:    0.8,
		SizeMin:        1.5,
		SizeMax:        4,
		ColorBase:      color.NRGBA{R: 255, G: 170, B: 40, A: 255},
		ColorVariation: color.NRGBA{R: 0, G: 80, B: 40},
	}

	// DamageBurst marks a hit on the player
	DamageBurst = BurstStyle{
		Count:          12,
		VelocityMin:    40,
		VelocityMax:    120,
		LifetimeMin:    0.15,
		LifetimeMax:    0.35,
		SizeMin:        1,
		SizeMax:        2.5,
		ColorBase:      color.NRGBA{R: 255, G: 60, B: 60, A: 255},
		ColorVariation: color.NRGBA{R: 0, G: 40, B: 40},
	}
)

// ParticleSystem owns short-lived visual effects. It uses its own random
// source so effects never disturb the seeded simulation.
type ParticleSystem struct {
	particles    []Particle
	maxParticles int
	rng          *rand.Rand
}

// NewParticleSystem creates an empty particle system
func NewParticleSystem(maxParticles int, seed int64) *ParticleSystem {
	return &ParticleSystem{
		maxParticles: maxParticles,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// Len returns the number of live particles
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Emit spawns one burst of particles centered on pos
func (ps *ParticleSystem) Emit(pos game.Vec2, style BurstStyle) {
	for i := 0; i < style.Count && len(ps.particles) < ps.maxParticles; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := ps.between(style.VelocityMin, style.VelocityMax)
		ps.particles = append(ps.particles, Particle{
			pos:      pos,
			vel:      game.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			lifetime: ps.between(style.LifetimeMin, style.LifetimeMax),
			color:    ps.vary(style.ColorBase, style.ColorVariation),
			size:     ps.between(style.SizeMin, style.SizeMax),
		})
	}
}

// Observe emits the bursts for one tick's events
func (ps *ParticleSystem) Observe(report game.Report, player game.Vec2) {
	for _, site := range report.KillSites {
		ps.Emit(site, ExplosionBurst)
	}
	if report.PlayerHits > 0 {
		ps.Emit(player, DamageBurst)
	}
}

// Update ages and moves every particle, dropping the expired ones
func (ps *ParticleSystem) Update(dt float64) {
	kept := ps.particles[:0]
	for _, p := range ps.particles {
		p.age += dt
		if !p.IsAlive() {
			continue
		}
		p.pos = p.pos.Add(p.vel.Scale(dt))
		kept = append(kept, p)
	}
	clear(ps.particles[len(kept):])
	ps.particles = kept
}

// Clear drops every particle, e.g. when a run ends
func (ps *ParticleSystem) Clear() {
	clear(ps.particles)
	ps.particles = ps.particles[:0]
}

// Draw renders all particles, fading them out with age
func (ps *ParticleSystem) Draw(screen *ebiten.Image) {
	for _, p := range ps.particles {
		alpha := math.Max(0, math.Min(1, 1-p.age/p.lifetime))
		clr := p.color
		clr.A = uint8(float64(clr.A) * alpha)
		vector.DrawFilledCircle(screen, float32(p.pos.X), float32(p.pos.Y), float32(p.size), clr, true)
	}
}

func (ps *ParticleSystem) between(lo, hi float64) float64 {
	return lo + ps.rng.Float64()*(hi-lo)
}

func (ps *ParticleSystem) vary(base, variation color.NRGBA) color.NRGBA {
	jitter := func(c, v uint8) uint8 {
		f := float64(c) + (ps.rng.Float64()*2-1)*float64(v)
		return uint8(math.Max(0, math.Min(255, f)))
	}
	return color.NRGBA{
		R: jitter(base.R, variation.R),
		G: jitter(base.G, variation.G),
		B: jitter(base.B, variation.B),
		A: base.A,
	}
}
