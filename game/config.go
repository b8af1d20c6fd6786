package game

import "time"

// Config holds game configuration constants
type Config struct {
	// WorldWidth is the width of the playfield in world units
	WorldWidth float64

	// WorldHeight is the height of the playfield in world units
	WorldHeight float64

	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// MaxStep caps the simulation step when a frame stalls
	MaxStep time.Duration

	// SpawnInterval is the simulation time between timed hostile spawns
	SpawnInterval time.Duration

	// SpawnRanges are the distributions new hostiles are drawn from
	SpawnRanges SpawnRanges

	// VariantWeights is the fixed spawn table for hostile variants
	VariantWeights []VariantWeight

	// PlayerStart is where the player's center is placed on reset
	PlayerStart Vec2

	// Seed for the spawner's random source
	Seed int64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		WorldWidth:     1280,
		WorldHeight:    720,
		ScreenWidth:    1280,
		ScreenHeight:   720,
		MaxStep:        33 * time.Millisecond,
		SpawnInterval:  3000 * time.Millisecond,
		SpawnRanges:    DefaultSpawnRanges(),
		VariantWeights: DefaultVariantWeights(),
		PlayerStart:    Vec2{X: 632, Y: 332}, // Top-left (600, 300) of the 64px box
		Seed:           1,
	}
}

// Bounds returns the world rectangle
func (c Config) Bounds() Bounds {
	return Bounds{Width: c.WorldWidth, Height: c.WorldHeight}
}
