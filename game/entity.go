package game

import "math"

// Player is the controllable ship
type Player struct {
	// Center of the player's bounding box in world coordinates
	Pos Vec2

	// Velocity intent from the held direction flags, in units per second
	Vel Vec2

	// Facing angle in radians, derived from the pointer
	Facing float64

	// Health in [0, 1]
	Health float64

	// Seconds remaining before the next shot is allowed
	FireCooldown float64
}

// NewPlayer creates a player at full health centered on pos
func NewPlayer(pos Vec2) Player {
	return Player{
		Pos:    pos,
		Health: 1.0,
	}
}

// Projectile travels in a straight line until it hits something or is cleaned up
type Projectile struct {
	Pos   Vec2
	Dir   Vec2 // Unit length
	Speed float64
	Owner Owner
	Live  bool
}

// Hostile is an AI-driven adversary
type Hostile struct {
	// Center in world coordinates
	Pos Vec2

	// Unit facing direction, steered toward the player
	Dir Vec2

	// Movement speed in units per second, already scaled by the variant
	Speed float64

	// Seconds until the hostile may fire again
	FireCooldown float64

	// Remaining hit points, never negative
	Life float64

	// Orbit around the player: radius, accumulated phase and per-tick phase step
	OrbitRadius float64
	OrbitPhase  float64
	OrbitSpeed  float64

	// Stats are resolved once from the variant and never change afterwards
	Stats VariantStats
}

// HostileParams are the randomized parameters of a new hostile
type HostileParams struct {
	Pos         Vec2
	Speed       float64
	OrbitRadius float64
	OrbitSpeed  float64
	Variant     Variant
}

// NewHostile creates a hostile and resolves its variant stats
func NewHostile(p HostileParams) Hostile {
	stats := GetVariantStats(p.Variant)
	return Hostile{
		Pos:         p.Pos,
		Dir:         Vec2{X: 1, Y: 0},
		Speed:       p.Speed * stats.SpeedScale,
		Life:        stats.MaxLife,
		OrbitRadius: p.OrbitRadius,
		OrbitSpeed:  p.OrbitSpeed,
		Stats:       stats,
	}
}

// Variant returns the hostile's variant tag
func (h *Hostile) Variant() Variant {
	return h.Stats.Variant
}

// Alive reports whether the hostile still has hit points
func (h *Hostile) Alive() bool {
	return h.Life > 0
}

// OrbitTarget returns the point the hostile is currently drifting toward
func (h *Hostile) OrbitTarget(center Vec2) Vec2 {
	return center.Add(Vec2{X: math.Cos(h.OrbitPhase), Y: math.Sin(h.OrbitPhase)}.Scale(h.OrbitRadius))
}
