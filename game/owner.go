package game

import "image/color"

// Owner represents which side fired a projectile
type Owner int

const (
	PlayerOwned Owner = iota
	HostileOwned
)

// OwnerConfig holds presentation data for each side
type OwnerConfig struct {
	Owner Owner
	Name  string
	Color color.RGBA
}

var (
	// OwnerConfigs holds configuration for each side
	OwnerConfigs = map[Owner]OwnerConfig{
		PlayerOwned: {
			Owner: PlayerOwned,
			Name:  "player",
			Color: color.RGBA{120, 220, 255, 255},
		},
		HostileOwned: {
			Owner: HostileOwned,
			Name:  "hostile",
			Color: color.RGBA{255, 90, 60, 255},
		},
	}
)

// GetOwnerConfig returns configuration for a side
func GetOwnerConfig(owner Owner) OwnerConfig {
	if config, ok := OwnerConfigs[owner]; ok {
		return config
	}
	return OwnerConfig{
		Owner: owner,
		Name:  "unknown",
		Color: color.RGBA{255, 100, 0, 255}, // Orange fallback
	}
}

func (o Owner) String() string {
	return GetOwnerConfig(o).Name
}
