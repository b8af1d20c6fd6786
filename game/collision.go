package game

// Report summarizes what happened during one tick
type Report struct {
	PlayerFired   bool
	HostilesFired int
	Spawned       bool

	HostileHits int    // Player projectiles that struck a hostile
	Kills       int
	KillSites   []Vec2 // Where each destroyed hostile was, in kill order
	PlayerHits  int    // Hostile projectiles that struck the player
	Expired     int    // Projectiles dropped for leaving the cleanup range
	Despawned   int    // Hostiles dropped for leaving the world margin

	// Depleted is set when the player's health ran out this tick
	Depleted bool
}

// Resolver handles projectile collisions, damage, scoring and cleanup
type Resolver struct {
	bounds Bounds
}

// NewResolver creates a resolver for the given world bounds
func NewResolver(bounds Bounds) *Resolver {
	return &Resolver{bounds: bounds}
}

// Resolve sweeps every projectile in collection order, then applies
// regeneration, clamps health and drops dead or stray hostiles.
// Projectiles and hostiles are compacted in place, so removing element i
// never skips or revisits element i+1.
func (r *Resolver) Resolve(s *Session, dt float64, report *Report) {
	w := &s.World
	player := &w.Player

	kept := w.Projectiles[:0]
	for i := range w.Projectiles {
		p := w.Projectiles[i]
		if !p.Live {
			continue
		}
		if p.Expired(player.Pos) {
			report.Expired++
			continue
		}

		switch p.Owner {
		case PlayerOwned:
			if r.hitHostile(s, &p, report) {
				continue
			}
		case HostileOwned:
			// Damage may push health below zero here; it is clamped after regen
			if player.Pos.Within(p.Pos, PlayerHitRadius) {
				player.Health -= HitDamage
				report.PlayerHits++
				continue
			}
		}
		kept = append(kept, p)
	}
	clear(w.Projectiles[len(kept):])
	w.Projectiles = kept

	player.Health = clamp(player.Health+RegenRate*dt, 0, 1)

	alive := w.Hostiles[:0]
	for i := range w.Hostiles {
		h := w.Hostiles[i]
		if !h.Alive() {
			continue
		}
		if !r.bounds.Contains(h.Pos, BoundsMargin) {
			report.Despawned++
			continue
		}
		alive = append(alive, h)
	}
	clear(w.Hostiles[len(alive):])
	w.Hostiles = alive

	if player.Health <= 0 {
		report.Depleted = true
	}
}

// hitHostile applies a player projectile to the first live hostile it overlaps.
// Only one hostile can be hit per projectile.
func (r *Resolver) hitHostile(s *Session, p *Projectile, report *Report) bool {
	for j := range s.World.Hostiles {
		h := &s.World.Hostiles[j]
		if !h.Alive() || !h.Pos.Within(p.Pos, HostileHitRadius) {
			continue
		}
		h.Life -= PlayerBlaster.Damage
		report.HostileHits++
		if h.Life <= lifeEpsilon {
			h.Life = 0
			s.Score += KillBonus
			report.Kills++
			report.KillSites = append(report.KillSites, h.Pos)
		}
		return true
	}
	return false
}
