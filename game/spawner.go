package game

import "time"

// FloatRange is an inclusive-exclusive uniform range
type FloatRange struct {
	Min, Max float64
}

// SpawnRanges are the uniform distributions spawn parameters are drawn from
type SpawnRanges struct {
	Speed       FloatRange
	OrbitRadius FloatRange
	OrbitSpeed  FloatRange
}

// DefaultSpawnRanges returns the fixed spawn distributions
func DefaultSpawnRanges() SpawnRanges {
	return SpawnRanges{
		Speed:       FloatRange{Min: 150, Max: 300},
		OrbitRadius: FloatRange{Min: 200, Max: 400},
		OrbitSpeed:  FloatRange{Min: 0.01, Max: 0.05},
	}
}

// Spawner creates hostiles on a fixed interval of simulation time
type Spawner struct {
	rng      *RNG
	interval time.Duration
	ranges   SpawnRanges
	bounds   Bounds
	weights  []VariantWeight
	total    int
}

// NewSpawner creates a spawner drawing from rng
func NewSpawner(rng *RNG, config Config) *Spawner {
	weights := config.VariantWeights
	if totalWeight(weights) == 0 {
		weights = DefaultVariantWeights()
	}
	return &Spawner{
		rng:      rng,
		interval: config.SpawnInterval,
		ranges:   config.SpawnRanges,
		bounds:   config.Bounds(),
		weights:  weights,
		total:    totalWeight(weights),
	}
}

// Due reports whether a full interval of simulation time has passed since the last spawn
func (s *Spawner) Due(now, lastSpawn time.Duration) bool {
	return now-lastSpawn >= s.interval
}

// Update spawns at most one hostile if the interval has elapsed.
// It returns true when a hostile was added.
func (s *Spawner) Update(session *Session) bool {
	if !s.Due(session.Elapsed, session.LastSpawn) {
		return false
	}
	session.World.Hostiles = append(session.World.Hostiles, s.Next())
	session.LastSpawn = session.Elapsed
	return true
}

// Seed adds the guaranteed first hostile of a session, ignoring the interval
func (s *Spawner) Seed(session *Session) {
	session.World.Hostiles = append(session.World.Hostiles, s.Next())
	session.LastSpawn = session.Elapsed
}

// Next draws a new hostile. Parameters are drawn in a fixed order so a seed
// reproduces the same sequence.
func (s *Spawner) Next() Hostile {
	x := s.rng.Range(0, s.bounds.Width)
	y := s.rng.Range(0, s.bounds.Height)
	speed := s.rng.Range(s.ranges.Speed.Min, s.ranges.Speed.Max)
	radius := s.rng.Range(s.ranges.OrbitRadius.Min, s.ranges.OrbitRadius.Max)
	orbitSpeed := s.rng.Range(s.ranges.OrbitSpeed.Min, s.ranges.OrbitSpeed.Max)
	variant := pickVariant(s.weights, s.rng.Intn(s.total))

	return NewHostile(HostileParams{
		Pos:         Vec2{X: x, Y: y},
		Speed:       speed,
		OrbitRadius: radius,
		OrbitSpeed:  orbitSpeed,
		Variant:     variant,
	})
}
