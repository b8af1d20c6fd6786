package game

import "image/color"

// Variant selects a fixed hostile stat bundle
type Variant int

const (
	VariantBalanced Variant = iota // All-rounder
	VariantFast                    // Quick, agile and fragile
	VariantTank                    // Slow, sluggish and sturdy
)

// VariantStats is the stat record a hostile resolves once at construction
type VariantStats struct {
	Variant         Variant
	TurnRate        float64 // Facing blend rate per second
	FireReset       float64 // Seconds between shots
	FireThreshold   float64 // Minimum dot(facing, toPlayer) to shoot
	ProjectileSpeed float64
	SpeedScale      float64 // Multiplier applied to the rolled spawn speed
	MaxLife         float64
	Color           color.RGBA
}

// GetVariantStats returns the stat bundle for a variant
func GetVariantStats(v Variant) VariantStats {
	switch v {
	case VariantBalanced:
		return VariantStats{
			Variant:         VariantBalanced,
			TurnRate:        3.0,
			FireReset:       0.5,
			FireThreshold:   0.9,
			ProjectileSpeed: 500.0,
			SpeedScale:      1.0,
			MaxLife:         1.0,
			Color:           color.RGBA{255, 0, 0, 255},
		}
	case VariantFast:
		return VariantStats{
			Variant:         VariantFast,
			TurnRate:        5.0,
			FireReset:       0.3,
			FireThreshold:   0.8,
			ProjectileSpeed: 600.0,
			SpeedScale:      1.5,
			MaxLife:         0.5,
			Color:           color.RGBA{255, 160, 0, 255},
		}
	case VariantTank:
		return VariantStats{
			Variant:         VariantTank,
			TurnRate:        2.0,
			FireReset:       1.0,
			FireThreshold:   0.95,
			ProjectileSpeed: 400.0,
			SpeedScale:      0.7,
			MaxLife:         2.0,
			Color:           color.RGBA{160, 40, 200, 255},
		}
	default:
		return GetVariantStats(VariantBalanced)
	}
}

func (v Variant) String() string {
	switch v {
	case VariantBalanced:
		return "balanced"
	case VariantFast:
		return "fast"
	case VariantTank:
		return "tank"
	default:
		return "unknown"
	}
}

// VariantWeight pairs a variant with its relative spawn weight
type VariantWeight struct {
	Variant Variant
	Weight  int
}

// DefaultVariantWeights is the fixed spawn table
func DefaultVariantWeights() []VariantWeight {
	return []VariantWeight{
		{Variant: VariantBalanced, Weight: 6},
		{Variant: VariantFast, Weight: 3},
		{Variant: VariantTank, Weight: 2},
	}
}

// pickVariant maps a roll in [0, total) onto the weight table
func pickVariant(weights []VariantWeight, roll int) Variant {
	for _, w := range weights {
		if roll < w.Weight {
			return w.Variant
		}
		roll -= w.Weight
	}
	return VariantBalanced
}

func totalWeight(weights []VariantWeight) int {
	total := 0
	for _, w := range weights {
		if w.Weight > 0 {
			total += w.Weight
		}
	}
	return total
}
