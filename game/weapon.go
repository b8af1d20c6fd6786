package game

// WeaponConfig describes a projectile launcher
type WeaponConfig struct {
	Name            string
	ProjectileSpeed float64
	Cooldown        float64 // Seconds between shots
	Damage          float64
}

func (w WeaponConfig) String() string {
	return w.Name
}

// PlayerBlaster is the player's only weapon
var PlayerBlaster = WeaponConfig{
	Name:            "blaster",
	ProjectileSpeed: 700.0,
	Cooldown:        0.1,
	Damage:          HitDamage,
}
