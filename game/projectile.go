package game

// NewProjectile creates a live projectile. dir must already be unit length.
func NewProjectile(origin, dir Vec2, speed float64, owner Owner) Projectile {
	return Projectile{
		Pos:   origin,
		Dir:   dir,
		Speed: speed,
		Owner: owner,
		Live:  true,
	}
}

// Integrate advances the projectile along its direction
func (p *Projectile) Integrate(dt float64) {
	p.Pos = p.Pos.Add(p.Dir.Scale(p.Speed * dt))
}

// Expired reports whether the projectile is beyond the cleanup range of the player
func (p *Projectile) Expired(playerCenter Vec2) bool {
	return p.Pos.DistanceTo(playerCenter) > CleanupRange
}

// IntegrateProjectiles advances every live projectile regardless of owner
func IntegrateProjectiles(projectiles []Projectile, dt float64) {
	for i := range projectiles {
		if !projectiles[i].Live {
			continue
		}
		projectiles[i].Integrate(dt)
	}
}
