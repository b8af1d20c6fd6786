package game

// Move integrates the player's position from the held direction flags and
// keeps the bounding box inside the world
func (p *Player) Move(in Intent, dt float64, bounds Bounds) {
	axis := in.Axis()
	vel := axis.Scale(PlayerSpeed)
	if axis.X != 0 && axis.Y != 0 {
		vel = vel.Scale(diagonalScale)
	}
	p.Vel = vel
	p.Pos = p.Pos.Add(vel.Scale(dt))

	half := PlayerSize / 2
	p.Pos.X = clamp(p.Pos.X, half, bounds.Width-half)
	p.Pos.Y = clamp(p.Pos.Y, half, bounds.Height-half)
}

// Face points the player at the pointer
func (p *Player) Face(pointer Vec2) {
	p.Facing = pointer.Sub(p.Pos).Angle()
}

// Fire launches a player-owned projectile toward target if the cooldown allows it
func (p *Player) Fire(target Vec2, projectiles []Projectile) ([]Projectile, bool) {
	if p.FireCooldown > 0 {
		return projectiles, false
	}
	dir := target.Sub(p.Pos).NormalizeOr(FallbackDir)
	projectiles = append(projectiles, NewProjectile(p.Pos, dir, PlayerBlaster.ProjectileSpeed, PlayerOwned))
	p.FireCooldown = PlayerBlaster.Cooldown
	return projectiles, true
}

// Cool counts the fire cooldown down, floored at zero
func (p *Player) Cool(dt float64) {
	p.FireCooldown -= dt
	if p.FireCooldown < 0 {
		p.FireCooldown = 0
	}
}
