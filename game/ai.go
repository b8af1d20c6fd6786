package game

// Update runs one tick of hostile behaviour against a target (the player's center).
// It may append a hostile-owned projectile and reports whether it fired.
// A hostile that fires does not steer or move on the same tick.
func (h *Hostile) Update(dt float64, target Vec2, projectiles []Projectile) ([]Projectile, bool) {
	offset := target.Sub(h.Pos)
	distance := offset.Len()
	toPlayer := offset.NormalizeOr(FallbackDir)

	// Fire when facing is aimed closely enough and the gun is ready
	aim := toPlayer.Dot(h.Dir)
	if aim >= h.Stats.FireThreshold && h.FireCooldown <= 0 {
		projectiles = append(projectiles, NewProjectile(h.Pos, toPlayer, h.Stats.ProjectileSpeed, HostileOwned))
		h.FireCooldown = h.Stats.FireReset
		return projectiles, true
	}

	h.FireCooldown -= dt
	if h.FireCooldown < 0 {
		h.FireCooldown = 0
	}

	// Blend facing toward the player
	h.Dir = h.Dir.Add(toPlayer.Scale(h.Stats.TurnRate * dt)).NormalizeOr(h.Dir)

	// Phase advances per tick, not per second
	h.OrbitPhase += h.OrbitSpeed
	orbit := h.OrbitTarget(target)

	if distance > CloseRange {
		h.Pos = h.Pos.Add(toPlayer.Scale(h.Speed * dt))
	}
	h.Pos = h.Pos.Add(orbit.Sub(h.Pos).Scale(OrbitPull))

	return projectiles, false
}

// UpdateHostiles runs the AI for every hostile in collection order and
// returns the grown projectile slice and the number of hostiles that fired
func UpdateHostiles(hostiles []Hostile, dt float64, target Vec2, projectiles []Projectile) ([]Projectile, int) {
	fired := 0
	for i := range hostiles {
		var ok bool
		projectiles, ok = hostiles[i].Update(dt, target, projectiles)
		if ok {
			fired++
		}
	}
	return projectiles, fired
}
